package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mini-rules/internal/policy"
)

// Coupon sources understood by CouponConfig.Source.
const (
	CouponSourceBuiltin  = "builtin"
	CouponSourceFile     = "file"
	CouponSourceS3       = "s3"
	CouponSourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Logger      LoggerConfig
	Coupon      CouponConfig
	Database    DatabaseConfig
	S3          S3Config
	Email       EmailConfig
	Store       StoreConfig
	Eligibility EligibilityConfig
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"` // "json" or "console"
}

// CouponConfig selects where the coupon table is read from at startup.
type CouponConfig struct {
	Source string   `env:"COUPON_SOURCE" envDefault:"builtin"`
	Files  []string `env:"COUPON_FILES" envSeparator:","`
	Table  string   `env:"COUPON_TABLE" envDefault:"coupons"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string `env:"DB_HOST" envDefault:"localhost"`
	Port            int    `env:"DB_PORT" envDefault:"5432"`
	User            string `env:"DB_USER" envDefault:"postgres"`
	Password        string `env:"DB_PASSWORD"`
	Database        string `env:"DB_NAME" envDefault:"minirules"`
	MaxConnections  int    `env:"DB_MAX_CONNECTIONS" envDefault:"5"`
	MinConnections  int    `env:"DB_MIN_CONNECTIONS" envDefault:"1"`
	MaxConnLifetime int    `env:"DB_MAX_CONN_LIFETIME" envDefault:"300"` // seconds
}

// S3Config holds AWS S3 configuration for coupon files.
type S3Config struct {
	Enabled bool   `env:"S3_ENABLED" envDefault:"false"`
	Bucket  string `env:"S3_BUCKET"`
	Region  string `env:"S3_REGION" envDefault:"us-east-1"`
	Prefix  string `env:"S3_PREFIX" envDefault:"coupons/"` // Path prefix within bucket
}

// EmailConfig holds Postmark credentials. Without a server token messages
// are only logged.
type EmailConfig struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
}

// Enabled reports whether outbound email should go through Postmark.
func (c EmailConfig) Enabled() bool {
	return c.PostmarkServerToken != ""
}

// StoreConfig holds opening hours and the yearly seasonal discount.
type StoreConfig struct {
	OpenHour      int     `env:"STORE_OPEN_HOUR" envDefault:"8"`
	CloseHour     int     `env:"STORE_CLOSE_HOUR" envDefault:"20"`
	SeasonalMonth int     `env:"SEASONAL_MONTH" envDefault:"12"`
	SeasonalDay   int     `env:"SEASONAL_DAY" envDefault:"25"`
	SeasonalRate  float64 `env:"SEASONAL_RATE" envDefault:"0.2"`
}

// EligibilityConfig points at an optional YAML file of minimum driving ages.
type EligibilityConfig struct {
	File string `env:"ELIGIBILITY_FILE"`
}

// Load loads configuration from environment variables, after preloading an
// optional .env file from the working directory.
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	switch c.Coupon.Source {
	case CouponSourceBuiltin:
	case CouponSourceFile:
		if len(c.Coupon.Files) == 0 {
			return fmt.Errorf("coupon files are required for the %s source", c.Coupon.Source)
		}
	case CouponSourceS3:
		if !c.S3.Enabled {
			return fmt.Errorf("S3 must be enabled for the s3 coupon source")
		}
		if len(c.Coupon.Files) == 0 {
			return fmt.Errorf("coupon files are required for the %s source", c.Coupon.Source)
		}
	case CouponSourcePostgres:
		if strings.TrimSpace(c.Coupon.Table) == "" {
			return fmt.Errorf("coupon table is required for the postgres source")
		}
		if err := c.Database.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid coupon source: %s (must be builtin, file, s3, or postgres)", c.Coupon.Source)
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	if (c.Email.PostmarkServerToken != "" || c.Email.PostmarkAccountToken != "") && c.Email.SenderEmail == "" {
		return fmt.Errorf("sender email is required when Postmark is configured")
	}

	return c.Store.Validate()
}

// Validate checks the connection settings needed by the postgres coupon source.
func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// Validate checks opening hours and the seasonal discount.
func (c *StoreConfig) Validate() error {
	if c.OpenHour < 0 || c.CloseHour > 24 || c.OpenHour >= c.CloseHour {
		return fmt.Errorf("invalid store hours: %d-%d (need 0 <= open < close <= 24)", c.OpenHour, c.CloseHour)
	}

	if c.SeasonalMonth < 1 || c.SeasonalMonth > 12 {
		return fmt.Errorf("invalid seasonal month: %d", c.SeasonalMonth)
	}

	if c.SeasonalDay < 1 || c.SeasonalDay > 31 {
		return fmt.Errorf("invalid seasonal day: %d", c.SeasonalDay)
	}

	if c.SeasonalRate < 0 || c.SeasonalRate >= 1 {
		return fmt.Errorf("invalid seasonal rate: %v (must be in [0, 1))", c.SeasonalRate)
	}

	return c.Seasonal().Validate()
}

// Seasonal returns the configured seasonal discount.
func (c *StoreConfig) Seasonal() policy.SeasonalDiscount {
	return policy.SeasonalDiscount{
		Month: time.Month(c.SeasonalMonth),
		Day:   c.SeasonalDay,
		Rate:  c.SeasonalRate,
	}
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}
