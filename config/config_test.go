package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 0.06, cfg.Quantification.InflationRate)
	assert.Equal(t, StoreMemory, cfg.Store.Kind)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "financial_state_object", cfg.Agent.OutputKey)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
quantification:
  inflation_rate: 0.045
store:
  kind: redis
  redis_addr: "redis:6379"
  ttl: 24h
rate_limit:
  capacity: 10
  refill: 30s
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 0.045, cfg.Quantification.InflationRate)
	assert.Equal(t, `category == "debt_reduction"`, cfg.Quantification.ExemptionRule, "unset keys keep defaults")
	assert.Equal(t, StoreRedis, cfg.Store.Kind)
	assert.Equal(t, 24*time.Hour, cfg.Store.GetTTL())
	assert.Equal(t, 30*time.Second, cfg.RateLimit.GetRefill())
	assert.Equal(t, 15*time.Second, cfg.Server.GetReadTimeout())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("overrides apply over defaults", func(t *testing.T) {
		t.Setenv("GOALQ_ADDR", ":7000")
		t.Setenv("GOALQ_INFLATION_RATE", "0.03")
		t.Setenv("GOALQ_STORE", "redis")
		t.Setenv("GOALQ_REDIS_ADDR", "cache:6379")
		t.Setenv("GOALQ_REDIS_DB", "2")
		t.Setenv("GOALQ_RATE_LIMIT", "5")
		t.Setenv("GOALQ_DEBT_RULE", `category == "loan_payoff"`)

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, ":7000", cfg.Server.Addr)
		assert.Equal(t, 0.03, cfg.Quantification.InflationRate)
		assert.Equal(t, StoreRedis, cfg.Store.Kind)
		assert.Equal(t, "cache:6379", cfg.Store.RedisAddr)
		assert.Equal(t, 2, cfg.Store.DB)
		assert.Equal(t, 5, cfg.RateLimit.Capacity)
		assert.Equal(t, `category == "loan_payoff"`, cfg.Quantification.ExemptionRule)
	})

	t.Run("invalid numbers are reported", func(t *testing.T) {
		t.Setenv("GOALQ_INFLATION_RATE", "six percent")
		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"inflation at -100%", func(c *Config) { c.Quantification.InflationRate = -1 }},
		{"unknown store", func(c *Config) { c.Store.Kind = "postgres" }},
		{"redis without addr", func(c *Config) { c.Store.Kind = StoreRedis; c.Store.RedisAddr = "" }},
		{"zero rate limit", func(c *Config) { c.RateLimit.Capacity = 0 }},
		{"bad duration", func(c *Config) { c.Server.ReadTimeout = "soon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Quantification.InflationRate = 0.07
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
