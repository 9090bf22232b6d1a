package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv      = "STOREFRONT_APP_ENV"
	EnvPort        = "STOREFRONT_APP_PORT"
	EnvCatalogPath = "STOREFRONT_CATALOG_PATH"
	EnvRedisURL    = "STOREFRONT_REDIS_URL"
	EnvRedisAddr   = "STOREFRONT_REDIS_ADDR"
	EnvCartTTL     = "STOREFRONT_CART_SESSION_TTL"
	EnvTaxRate     = "STOREFRONT_TAX_RATE"
	EnvCORSOrigins = "STOREFRONT_CORS_ORIGINS"
)

type Config struct {
	App       AppConfig
	Catalog   CatalogConfig
	Cart      CartConfig
	Checkout  CheckoutConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"STOREFRONT_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points at an optional YAML seed that replaces the embedded catalog.
type CatalogConfig struct {
	Path string `envconfig:"STOREFRONT_CATALOG_PATH"`
}

type CartConfig struct {
	SessionTTL       time.Duration `envconfig:"STOREFRONT_CART_SESSION_TTL" default:"24h"`
	SweepInterval    time.Duration `envconfig:"STOREFRONT_CART_SWEEP_INTERVAL" default:"5m"`
	NotificationFeed int           `envconfig:"STOREFRONT_CART_NOTIFICATION_FEED_SIZE" default:"20"`
}

type CheckoutConfig struct {
	FreeShippingThreshold decimal.Decimal `envconfig:"STOREFRONT_FREE_SHIPPING_THRESHOLD" default:"99"`
	FlatShipping          decimal.Decimal `envconfig:"STOREFRONT_FLAT_SHIPPING" default:"9.99"`
	TaxRate               decimal.Decimal `envconfig:"STOREFRONT_TAX_RATE" default:"0.08"`
}

func (c CheckoutConfig) validate() error {
	if c.FreeShippingThreshold.IsNegative() || c.FlatShipping.IsNegative() {
		return fmt.Errorf("shipping amounts must be non-negative")
	}
	if c.TaxRate.IsNegative() || c.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1", EnvTaxRate)
	}
	return nil
}

// RedisConfig is optional; an empty URL and address disables idempotency and rate limiting.
type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type RateLimitConfig struct {
	CartWindow time.Duration `envconfig:"STOREFRONT_CART_RATE_LIMIT_WINDOW" default:"1m"`
	CartLimit  int           `envconfig:"STOREFRONT_CART_RATE_LIMIT" default:"120"`
}

type CORSConfig struct {
	Origins []string `envconfig:"STOREFRONT_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
