package config

import (
	"fmt"
	"os"
	"strconv"
)

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ApplyEnv overrides file settings with environment variables.
func ApplyEnv(cfg *AppConfig) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("apply env: PORT=%q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("TRAVEL_TIME_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	return Validate(cfg)
}
