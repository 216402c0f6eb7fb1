package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ANTHROPIC_API_KEY", "test-anthropic-key")
	t.Setenv("PINECONE_API_KEY", "test-pinecone-key")
	t.Setenv("DB_PASSWORD", "test-password")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "fitfusion-rag", cfg.PineconeIndexName)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadConfigMissingSecrets(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PINECONE_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PINECONE_API_KEY")
}

func TestLoadConfigInvalidRedisDB(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestValidateConfigRejectsBadSSLMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_SSL_MODE", "maybe")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_SSL_MODE")
}
