package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  url: postgres://localhost:5432/hrms?sslmode=disable
jwt:
  secret: file-secret
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 1440, cfg.JWT.ExpireMinutes)
	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
database:
  url: postgres://localhost:5432/hrms?sslmode=disable
jwt:
  secret: file-secret
  expire_minutes: 30
`)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "60")
	t.Setenv("SERVER_PORT", ":9090")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "HS512", cfg.JWT.Algorithm)
	assert.Equal(t, 60, cfg.JWT.ExpireMinutes)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoadConfigMissingSecret(t *testing.T) {
	path := writeConfigFile(t, `
database:
  url: postgres://localhost:5432/hrms?sslmode=disable
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret")
}

func TestLoadConfigUnsupportedAlgorithm(t *testing.T) {
	path := writeConfigFile(t, `
database:
  url: postgres://localhost:5432/hrms?sslmode=disable
jwt:
  secret: file-secret
  algorithm: RS256
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported jwt algorithm")
}

func TestLoadConfigMissingDatabaseURL(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: file-secret
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database url")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
