package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-from-env")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := writeConfig(t, `
[predictor]
url = "http://predictor.local/predict"

[booking]
accept_policy = "STRICT"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "http://predictor.local/predict", cfg.Predictor.URL)
	assert.Equal(t, "secret-from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, AcceptPolicyStrict, cfg.Booking.AcceptPolicy)
	assert.InDelta(t, 0.18, cfg.Pricing.TaxRate, 1e-9)
	assert.InDelta(t, 0.05, cfg.Pricing.BundleDiscountRate, 1e-9)
	assert.Equal(t, "nevsehir", cfg.Weather.DefaultCity)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Predictor.URL = "http://predictor.local/predict"
		cfg.Auth.JWTSecret = "secret"
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no predictor url", func(c *Config) { c.Predictor.URL = "" }},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"zero timeout", func(c *Config) { c.Predictor.Timeout = 0 }},
		{"long quote", func(c *Config) { c.Predictor.GroupTokenQuote = "''" }},
		{"tax rate out of range", func(c *Config) { c.Pricing.TaxRate = 1 }},
		{"negative discount", func(c *Config) { c.Pricing.BundleDiscountRate = -0.1 }},
		{"unknown accept policy", func(c *Config) { c.Booking.AcceptPolicy = "lenient" }},
		{"no jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"images without bucket", func(c *Config) { c.Images.Enabled = true; c.Images.Bucket = "" }},
		{"zero cart ttl", func(c *Config) { c.Cart.IdleTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
}
