// Package firebase points Google client libraries at the Firebase service
// account key used for push notifications.
package firebase

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/logger"
)

// CredentialsEnvVar is read by Google client libraries to locate the
// service account key.
const CredentialsEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"

// ConfigurePrivateKey exports the absolute path of cfg.ServerKey as
// GOOGLE_APPLICATION_CREDENTIALS. Nothing is done when no key is configured.
func ConfigurePrivateKey(cfg config.Firebase, log *logger.Logger) error {
	if cfg.ServerKey == "" {
		log.Debug().Msg("firebase server key not configured")
		return nil
	}

	path, err := filepath.Abs(cfg.ServerKey)
	if err != nil {
		return fmt.Errorf("error resolving firebase server key path: %w", err)
	}

	if err = os.Setenv(CredentialsEnvVar, path); err != nil {
		return fmt.Errorf("error setting %s: %w", CredentialsEnvVar, err)
	}

	log.Info().Str("path", path).Msg("firebase credentials configured")
	return nil
}
