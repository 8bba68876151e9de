package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv("development", envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8081", cfg.BookingAPIBase)
	assert.Equal(t, time.Local, cfg.Location)
	assert.Equal(t, 30*time.Second, cfg.ClockInterval)
	assert.Zero(t, cfg.RefreshInterval)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "return_empty", cfg.FetchFailurePolicy)
	assert.Zero(t, cfg.QuietSampleStep)
	assert.Equal(t, "sqlite", cfg.LocalStoreDriver)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Equal(t, "noop", cfg.Mailer.Provider)
	assert.Empty(t, cfg.Events.KafkaBrokers)
	assert.False(t, cfg.OTel.Enabled)
	assert.Equal(t, 1.0, cfg.OTel.SamplingRatio)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv("production", envMap(map[string]string{
		"PORT":                    "9000",
		"BOOKING_API_BASE":        "https://booking.example.com/",
		"BOOKING_USER_EMAIL":      "me@example.com",
		"TIME_ZONE":               "UTC",
		"CLOCK_INTERVAL":          "1m",
		"REFRESH_INTERVAL":        "5m",
		"FETCH_FAILURE_POLICY":    "return_error",
		"QUIET_HOURS_SAMPLE_STEP": "15m",
		"LOCALSTORE_DRIVER":       "postgres",
		"CORS_ALLOWED_ORIGINS":    "http://a.test, ,http://b.test",
		"MAILER_PROVIDER":         "ses",
		"EVENTS_KAFKA_BROKERS":    "k1:9092,k2:9092",
		"EVENTS_KAFKA_TOPIC":      "bookings",
		"OTEL_ENABLED":            "true",
		"OTEL_SAMPLING_RATIO":     "0.25",
	}))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://booking.example.com", cfg.BookingAPIBase)
	assert.Equal(t, "me@example.com", cfg.UserEmail)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, time.Minute, cfg.ClockInterval)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 15*time.Minute, cfg.QuietSampleStep)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "ses", cfg.Mailer.Provider)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.KafkaBrokers)
	assert.Equal(t, "bookings", cfg.Events.KafkaTopic)
	assert.True(t, cfg.OTel.Enabled)
	assert.Equal(t, 0.25, cfg.OTel.SamplingRatio)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantKey string
	}{
		{"bad duration", map[string]string{"CLOCK_INTERVAL": "soon"}, "CLOCK_INTERVAL"},
		{"zero clock", map[string]string{"CLOCK_INTERVAL": "0"}, "CLOCK_INTERVAL"},
		{"negative refresh", map[string]string{"REFRESH_INTERVAL": "-1s"}, "REFRESH_INTERVAL"},
		{"unknown zone", map[string]string{"TIME_ZONE": "Nowhere/Atlantis"}, "TIME_ZONE"},
		{"bad bool", map[string]string{"OTEL_ENABLED": "maybe"}, "OTEL_ENABLED"},
		{"ratio out of range", map[string]string{"OTEL_SAMPLING_RATIO": "2"}, "OTEL_SAMPLING_RATIO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv("development", envMap(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestFromEnv_ReportsAllErrors(t *testing.T) {
	_, err := FromEnv("development", envMap(map[string]string{
		"CLOCK_INTERVAL":  "x",
		"REQUEST_TIMEOUT": "y",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLOCK_INTERVAL")
	assert.Contains(t, err.Error(), "REQUEST_TIMEOUT")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		wantJSON  bool
		wantDebug bool
	}{
		{name: "development text", env: "development", level: "", wantJSON: false},
		{name: "production json", env: "production", level: "info", wantJSON: true},
		{name: "debug level", env: "", level: "DEBUG", wantDebug: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.env, tt.level)
			assert.Equal(t, tt.wantDebug, logger.Enabled(context.Background(), slog.LevelDebug))

			logger.Info("hello", "k", "v")
			if tt.wantJSON {
				assert.Contains(t, buf.String(), `"msg":"hello"`)
			} else {
				assert.Contains(t, buf.String(), "msg=hello")
			}
		})
	}
}

func TestLoad_DotEnvReachesLogger(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nPORT=9100\n"), 0o600))
	t.Chdir(dir)
	for _, key := range []string{"GO_ENV", "LOG_LEVEL", "PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.True(t, NewLogger().Enabled(context.Background(), slog.LevelDebug))
}
