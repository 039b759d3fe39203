package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "@RocketShoes:cart", cfg.CartStorageKey)
	assert.Equal(t, 5*time.Second, cfg.InventoryTimeout)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Empty(t, cfg.InventoryBaseURL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("INVENTORY_BASE_URL", "http://stock.local:3333")
	t.Setenv("INVENTORY_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "http://stock.local:3333", cfg.InventoryBaseURL)
	assert.Equal(t, 2*time.Second, cfg.InventoryTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	base := Config{
		CartStorageKey:   "cart",
		InventoryTimeout: time.Second,
		RateLimitRPS:     1,
		RateLimitBurst:   1,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty storage key", mutate: func(c *Config) { c.CartStorageKey = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.InventoryTimeout = 0 }, wantErr: true},
		{name: "zero rps", mutate: func(c *Config) { c.RateLimitRPS = 0 }, wantErr: true},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimitBurst = 0 }, wantErr: true},
		{name: "relative base url", mutate: func(c *Config) { c.InventoryBaseURL = "stock/api" }, wantErr: true},
		{name: "absolute base url", mutate: func(c *Config) { c.InventoryBaseURL = "http://localhost:3333/" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeAddr(t *testing.T) {
	assert.Equal(t, ":8080", normalizeAddr("8080"))
	assert.Equal(t, ":8080", normalizeAddr(":8080"))
	assert.Equal(t, "0.0.0.0:80", normalizeAddr("0.0.0.0:80"))
}
