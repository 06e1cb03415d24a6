package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
server:
  host: "127.0.0.1"
  port: 8080
persistence:
  backend: "rowstore"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
storage:
  upload_dir: "./uploads"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "rowstore", cfg.Persistence.Backend)
	assert.Equal(t, "inmogestion.db", cfg.Persistence.BoltPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "0 0 7 * * *", cfg.Scheduler.SendVisitReminders)
	assert.Equal(t, "0 30 0 * * *", cfg.Scheduler.ExpireStaleVisits)
	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
}

func TestLoad_PostgresBackendRequiresDatabase(t *testing.T) {
	content := `
server:
  port: 8080
persistence:
  backend: "postgres"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
storage:
  upload_dir: "./uploads"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorContains(t, err, "database host is required")
}

func TestLoad_RejectsShortJWTSecret(t *testing.T) {
	content := `
server:
  port: 8080
jwt:
  secret: "too-short"
storage:
  upload_dir: "./uploads"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorContains(t, err, "at least 32 characters")
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	content := `
server:
  port: 8080
persistence:
  backend: "dynamo"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
storage:
  upload_dir: "./uploads"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorContains(t, err, "unknown persistence backend")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PERSISTENCE_BACKEND", "rowstore")
	t.Setenv("BOLT_PATH", "/var/lib/inmogestion/data.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/inmogestion/data.db", cfg.Persistence.BoltPath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "app",
		Password: "pw",
		Database: "listings",
		SSLMode:  "require",
	}}
	assert.Equal(t, "postgres://app:pw@db.internal:5432/listings?sslmode=require", cfg.GetDatabaseConnectionString())
}
