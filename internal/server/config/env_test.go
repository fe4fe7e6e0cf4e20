package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubEnv(t *testing.T, dotenv string, env map[string]string) {
	t.Helper()

	origFile, origLookup := dotEnvFile, lookupEnv
	t.Cleanup(func() {
		dotEnvFile = origFile
		lookupEnv = origLookup
	})

	dotEnvFile = filepath.Join(t.TempDir(), ".env")
	if dotenv != "" {
		require.NoError(t, os.WriteFile(dotEnvFile, []byte(dotenv), 0o600))
	}
	lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestParseEnv_DotEnvAndProcessOverride(t *testing.T) {
	stubEnv(t,
		"SECRET_KEY=from-file\nDATABASE_URL=postgres://file\nACCESS_TOKEN_VALIDITY=10m\n",
		map[string]string{
			"SECRET_KEY":       "from-env",
			"COOKIE_SECURE":    "true",
			"ALLOWED_ORIGINS":  "https://a.example, https://b.example",
			"S3_BUCKET":        "exports",
			"ENVIRONMENT":      "production",
			"LOG_FORMAT":       "console",
			"S3_BASE_ENDPOINT": "http://minio:9000",
		})

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "from-env", cfg.SecretKey)
	assert.Equal(t, "postgres://file", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.ArchiveEnabled())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "http://minio:9000", cfg.S3BaseEndpoint)
}

func TestParseEnv_NoSources(t *testing.T) {
	stubEnv(t, "", nil)

	var cfg Config
	cfg.LoadDefaults()
	want := cfg
	parseEnv(&cfg)

	assert.Equal(t, want, cfg)
}

func TestParseEnv_InvalidValuesPanic(t *testing.T) {
	stubEnv(t, "", map[string]string{"REFRESH_TOKEN_VALIDITY": "forever"})
	require.Panics(t, func() { parseEnv(&Config{}) })

	stubEnv(t, "", map[string]string{"COOKIE_SECURE": "maybe"})
	require.Panics(t, func() { parseEnv(&Config{}) })
}
