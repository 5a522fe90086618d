package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
storage:
  driver: "sqlite"
  dsn: "storage/roster.db"
http_server:
  address: "localhost:8082"
  read_timeout: "3s"
  allowed_origins: ["http://localhost:5173"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "storage/roster.db", cfg.Storage.DSN)
	assert.Equal(t, "localhost:8082", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout, "default applies")
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout, "default applies")
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
storage:
  driver: "sqlite"
  dsn: "storage/roster.db"
http_server:
  address: "localhost:8082"
`)
	t.Setenv("ENV", "prod")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing env",
			body: "http_server:\n  address: \"localhost:8082\"\nstorage:\n  driver: \"memory\"\n",
		},
		{
			name: "sqlite without dsn",
			body: "env: \"dev\"\nhttp_server:\n  address: \"localhost:8082\"\nstorage:\n  driver: \"sqlite\"\n",
		},
		{
			name: "unknown driver",
			body: "env: \"dev\"\nhttp_server:\n  address: \"localhost:8082\"\nstorage:\n  driver: \"oracle\"\n  dsn: \"x\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}
