package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultSessionIssuer    = "adhdiary"
	defaultSessionDuration  = 365 * 24 * time.Hour
	defaultPasswordHashCost = 10
	defaultVersion          = "dev"
	defaultHTTPAddress      = "0.0.0.0:8000"
	defaultRequestTimeout   = 30 * time.Second
	defaultDBFileName       = "adhdiary.db"
	defaultUploadsDirName   = "uploads"
)

// volumeDir is the mount point of the persistent volume in deployments.
// Tests override it.
var volumeDir = "/data"

// defaultConfig builds the lowest-priority configuration source. The
// database file and uploads directory live on the persistent volume when it
// is mounted, and in the working directory otherwise.
func defaultConfig() *StructuredConfig {
	dataDir := "."
	if info, err := os.Stat(volumeDir); err == nil && info.IsDir() {
		dataDir = volumeDir
	}

	return &StructuredConfig{
		App: App{
			SessionIssuer:    defaultSessionIssuer,
			SessionDuration:  defaultSessionDuration,
			PasswordHashCost: defaultPasswordHashCost,
			Version:          defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    filepath.Join(dataDir, defaultDBFileName),
			},
			Files: Files{
				UploadsDir: filepath.Join(dataDir, defaultUploadsDirName),
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
