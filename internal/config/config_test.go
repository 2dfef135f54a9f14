package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090, "reports_dir": "/tmp/reports"}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/reports", cfg.ReportsDir)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{port:`), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REPORTS_DIR", "")

	cfg := &Config{}
	require.NoError(t, cfg.FromEnv())
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultReportsDir, cfg.ReportsDir)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/screening")
	t.Setenv("REPORTS_DIR", "/var/reports")

	cfg := &Config{Port: 8080}
	require.NoError(t, cfg.FromEnv())
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "postgres://localhost/screening", cfg.DatabaseURL)
	assert.Equal(t, "/var/reports", cfg.ReportsDir)
}

func TestFromEnvInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	cfg := &Config{}
	assert.Error(t, cfg.FromEnv())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.Error(t, (&Config{Port: 0}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}
