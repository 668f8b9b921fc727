package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
environment = "development"
host = "localhost"
port = 8080
log_level = "trace"
log_to_stdout = true
redis_host = "localhost"
redis_port = "6379"
gym_api_base_url = "http://localhost:8000/api"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"

[production]
environment = "production"
host = "0.0.0.0"
port = 9000
log_level = "debug"
logs_path = "/var/log/gymapp/service.log"
sentry_enabled = true
redis_host = "redis"
redis_port = "6379"
gym_api_base_url = "https://gymhealth.example.com/api"
gym_api_timeout_sec = 10
payment_confirm_allowed_per_min = 5
prometheus_metrics_host = "0.0.0.0"
prometheus_metrics_port = "2112"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigContent), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("dev", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.False(t, cfg.SentryEnabled)
	assert.Equal(t, "http://localhost:8000/api", cfg.GymAPIBaseURL)
	// defaults kick in when not set
	assert.Equal(t, 30, cfg.GymAPITimeoutSec)
	assert.Equal(t, 15, cfg.PaymentConfirmAllowedPerMin)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("production", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.SentryEnabled)
	assert.Equal(t, 10, cfg.GymAPITimeoutSec)
	assert.Equal(t, 5, cfg.PaymentConfirmAllowedPerMin)
}

func TestLoad_UnknownEnv(t *testing.T) {
	_, err := Load("staging", writeTestConfig(t))
	require.Error(t, err)
}

func TestLoad_MissingBaseURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[development]\nport = 8080\n"), 0o600))

	_, err := Load("dev", path)
	require.ErrorContains(t, err, "gym_api_base_url")
}
