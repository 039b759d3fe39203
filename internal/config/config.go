package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings of the cart service.
type Config struct {
	HTTPAddr string

	LogLevel  string
	LogFormat string

	DatabaseURL string // stock catalogue; empty keeps it in memory
	RedisAddr   string // cart storage; empty keeps it in memory

	CartStorageKey string

	InventoryBaseURL string // remote stock service; empty serves it from this process
	InventoryTimeout time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("cart.storage_key", "@RocketShoes:cart")
	v.SetDefault("inventory.base_url", "")
	v.SetDefault("inventory.timeout", 5*time.Second)
	v.SetDefault("ratelimit.rps", 5.0)
	v.SetDefault("ratelimit.burst", 10)
}

// Load reads .env (if any), the optional cart.yaml file and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("cart")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/rocketshoes")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// keys whose env name is not the upper-cased key path
	_ = v.BindEnv("http.addr", "HTTP_ADDR", "PORT")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("cart.storage_key", "CART_STORAGE_KEY")
	_ = v.BindEnv("inventory.base_url", "INVENTORY_BASE_URL")
	_ = v.BindEnv("inventory.timeout", "INVENTORY_TIMEOUT")

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPAddr:         normalizeAddr(v.GetString("http.addr")),
		LogLevel:         v.GetString("log.level"),
		LogFormat:        v.GetString("log.format"),
		DatabaseURL:      v.GetString("database.url"),
		RedisAddr:        v.GetString("redis.addr"),
		CartStorageKey:   v.GetString("cart.storage_key"),
		InventoryBaseURL: v.GetString("inventory.base_url"),
		InventoryTimeout: v.GetDuration("inventory.timeout"),
		RateLimitRPS:     v.GetFloat64("ratelimit.rps"),
		RateLimitBurst:   v.GetInt("ratelimit.burst"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.CartStorageKey == "" {
		return fmt.Errorf("cart.storage_key is required")
	}
	if c.InventoryTimeout <= 0 {
		return fmt.Errorf("inventory.timeout must be positive")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("ratelimit.rps must be positive")
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("ratelimit.burst must be at least 1")
	}
	if c.InventoryBaseURL != "" {
		u, err := url.Parse(c.InventoryBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("inventory.base_url must be an absolute url, got %q", c.InventoryBaseURL)
		}
	}
	return nil
}

// normalizeAddr accepts a bare port ("8080") as well as ":8080" or "host:8080".
func normalizeAddr(addr string) string {
	if addr == "" || strings.Contains(addr, ":") {
		return addr
	}
	return ":" + addr
}
