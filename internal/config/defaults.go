package config

import "time"

// DefaultInvalidCredentialsMessage is returned to observers whose login
// was rejected.
const DefaultInvalidCredentialsMessage = "A aparut o eroare la logarea in aplicatie. Va rugam sa verificati datele introduse si sa incercati din nou."

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: EnvironmentProduction,
		},
		JWT: JWT{
			Issuer:   "VoteMonitor",
			Audience: "*",
			ValidFor: 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Cache: Cache{
			Implementation:   CacheNoCache,
			DefaultTTL:       5 * time.Minute,
			EvictionInterval: time.Minute,
		},
		Hash: Hash{
			ServiceType: HashSHA256,
		},
		Files: Files{
			Type:          FilesLocal,
			LocalDir:      "uploads",
			BlobContainer: "uploads",
		},
		MobileSecurity: MobileSecurity{
			InvalidCredentialsErrorMessage: DefaultInvalidCredentialsMessage,
		},
	}
}
