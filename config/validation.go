package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateConfig checks that all required configuration values are present
// and well-formed. The vector and text-generation credentials are startup
// preconditions: the process must not come up without them.
func ValidateConfig(cfg *Config) error {
	var missing []string

	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.AnthropicAPIKey == "" {
		missing = append(missing, "ANTHROPIC_API_KEY")
	}
	if cfg.PineconeAPIKey == "" {
		missing = append(missing, "PINECONE_API_KEY")
	}
	if cfg.DBPassword == "" {
		missing = append(missing, "DB_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("invalid server port %q", cfg.ServerPort)
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return fmt.Errorf("invalid database port %q", cfg.DBPort)
	}

	switch cfg.DBSSLMode {
	case "disable", "require", "verify-ca", "verify-full":
	default:
		return fmt.Errorf("invalid DB_SSL_MODE %q", cfg.DBSSLMode)
	}

	return nil
}
