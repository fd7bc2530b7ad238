// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap assembles the vote-monitor API with go.uber.org/fx.
//
// [Module] provides storage, cache, hashing, file storage, metrics, the
// services and the transport handlers, and runs the start-up steps
// (migrations, Firebase credentials, file storage initialization).
// [ServerModule] adds the transport servers and background workers and
// binds them to the fx lifecycle.
//
// Typical usage:
//
//	fx.New(
//	    bootstrap.Options(cfg, buildInfo, log),
//	    bootstrap.Module,
//	    bootstrap.ServerModule,
//	).Run()
package bootstrap
