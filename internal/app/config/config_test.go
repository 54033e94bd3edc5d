package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oms/internal/app/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
app:
  name: oms-test
  log_level: debug
server:
  port: "9090"
  shutdown_timeout: 3s
database:
  driver: postgres
  dsn: host=localhost user=oms dbname=oms
order:
  number_max_attempts: 50
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "oms-test", cfg.App.Name)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 50, cfg.Order.NumberMaxAttempts)
	assert.Equal(t, "oms:order:events", cfg.Redis.Channel)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 1000, cfg.Order.NumberMaxAttempts)
	assert.Error(t, cfg.Validate(), "dsn is required")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: mysql
  dsn: from-file
`)
	t.Setenv("OMS_DATABASE_DSN", "from-env")
	t.Setenv("OMS_SERVER_PORT", "7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.DSN)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestValidate_UnsupportedDriver(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Database.Driver = "oracle"
	cfg.Database.DSN = "x"

	assert.Error(t, cfg.Validate())
}
