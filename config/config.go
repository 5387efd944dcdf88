package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Issuance modes.
const (
	IssuanceModeSimulated = "simulated"
	IssuanceModeHTTP      = "http"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Reward    RewardConfig    `mapstructure:"reward"`
	Issuance  IssuanceConfig  `mapstructure:"issuance"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type StorageConfig struct {
	Driver   string `mapstructure:"driver"`    // postgres, memory
	SeedDemo bool   `mapstructure:"seed_demo"` // load the demo merchants, users and transactions at startup
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"` // apply embedded migrations at startup
}

// DSN returns the PostgreSQL connection URL with credentials escaped.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

// RewardConfig drives the orchestrator's retry and idempotency behaviour.
type RewardConfig struct {
	MaxRetries int           `mapstructure:"max_retries"` // total attempts = max_retries + 1
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	ClaimTTL   time.Duration `mapstructure:"claim_ttl"` // must cover IssuanceBudget
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
	// PendingTimeout is the age after which a pending reward counts as
	// abandoned and is resumed by the next caller.
	PendingTimeout time.Duration `mapstructure:"pending_timeout"`
	Seed           uint64        `mapstructure:"seed"` // 0 = seed from time
}

// IssuanceConfig selects and tunes the payout gateway.
type IssuanceConfig struct {
	Mode        string        `mapstructure:"mode"` // simulated, http
	Latency     time.Duration `mapstructure:"latency"`
	FailureRate float64       `mapstructure:"failure_rate"`
	URL         string        `mapstructure:"url"`
	Secret      string        `mapstructure:"secret"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Currency    string        `mapstructure:"currency"`
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int64         `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CRW_ (Cash-back ReWards).
// Nested keys use underscore: CRW_DATABASE_HOST, CRW_REWARD_MAX_RETRIES, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.driver", StorageDriverPostgres)
	v.SetDefault("storage.seed_demo", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "cashback_rewards")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("reward.max_retries", 3)
	v.SetDefault("reward.retry_delay", "0s")
	v.SetDefault("reward.claim_ttl", "60s")
	v.SetDefault("reward.cache_ttl", "24h")
	v.SetDefault("reward.pending_timeout", "10m")
	v.SetDefault("reward.seed", 0)
	v.SetDefault("issuance.mode", IssuanceModeSimulated)
	v.SetDefault("issuance.latency", "200ms")
	v.SetDefault("issuance.failure_rate", 0.1)
	v.SetDefault("issuance.url", "")
	v.SetDefault("issuance.secret", "")
	v.SetDefault("issuance.timeout", "10s")
	v.SetDefault("issuance.currency", "USD")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.limit", 120)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CRW_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CRW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// IssuanceBudget is the longest a single transaction can spend issuing its
// reward: every attempt running to the gateway's per-call bound, plus the
// delays between attempts.
func (c *Config) IssuanceBudget() time.Duration {
	perAttempt := c.Issuance.Latency
	if c.Issuance.Mode == IssuanceModeHTTP {
		perAttempt = c.Issuance.Timeout
	}
	retries := time.Duration(max(c.Reward.MaxRetries, 0))
	return (retries+1)*perAttempt + retries*max(c.Reward.RetryDelay, 0)
}

// Validate rejects settings the reward pipeline cannot run with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q is not supported", c.Storage.Driver))
	}

	if c.Reward.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("reward.max_retries must be >= 0, got %d", c.Reward.MaxRetries))
	}
	if c.Reward.RetryDelay < 0 {
		errs = append(errs, errors.New("reward.retry_delay must not be negative"))
	}
	if c.Reward.ClaimTTL <= 0 {
		errs = append(errs, errors.New("reward.claim_ttl must be positive"))
	} else if budget := c.IssuanceBudget(); c.Reward.ClaimTTL < budget {
		errs = append(errs, fmt.Errorf("reward.claim_ttl %s is shorter than the worst-case issuance time %s", c.Reward.ClaimTTL, budget))
	}
	if c.Reward.PendingTimeout <= c.Reward.ClaimTTL {
		errs = append(errs, fmt.Errorf("reward.pending_timeout %s must exceed reward.claim_ttl %s", c.Reward.PendingTimeout, c.Reward.ClaimTTL))
	}

	switch c.Issuance.Mode {
	case IssuanceModeSimulated:
		if c.Issuance.FailureRate < 0 || c.Issuance.FailureRate > 1 {
			errs = append(errs, fmt.Errorf("issuance.failure_rate must be within [0,1], got %v", c.Issuance.FailureRate))
		}
	case IssuanceModeHTTP:
		if c.Issuance.URL == "" {
			errs = append(errs, errors.New("issuance.url is required in http mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("issuance.mode %q is not supported", c.Issuance.Mode))
	}

	if c.RateLimit.Enabled && (c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0) {
		errs = append(errs, errors.New("rate_limit.limit and rate_limit.window must be positive"))
	}

	return errors.Join(errs...)
}
