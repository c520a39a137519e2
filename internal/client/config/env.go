package config

import "os"

// Environment variables recognized by the client.
const (
	EnvAPIBaseURL     = "EASYAPT_API_URL"
	EnvCredentialFile = "EASYAPT_CREDENTIAL_FILE"
)

// parseEnv overlays Config with values from the environment. This is what
// lets the same binary target different deployments of the backend.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvCredentialFile); v != "" {
		cfg.CredentialFile = v
	}
}
