// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"go.uber.org/fx"

	"github.com/MKhiriev/vote-monitor/internal/bootstrap"
	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// @title           VoteMonitor
// @version         v1
// @description     API specs for NGO Admin and Observer operations.
// @termsOfService  TBD

// @contact.name   Code for Romania
// @contact.url    http://monitorizarevot.ro
// @contact.email  info@monitorizarevot.ro

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("vote-monitor-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevelForEnvironment(cfg.App.Environment)

	fx.New(
		bootstrap.Options(cfg, buildInfo, log),
		bootstrap.Module,
		bootstrap.ServerModule,
	).Run()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
