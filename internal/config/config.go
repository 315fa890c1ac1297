package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"mbs/inventory/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Store    StoreConfig    `mapstructure:"store"`
	Badger   BadgerConfig   `mapstructure:"badger"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cart     CartConfig     `mapstructure:"cart"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Stock    StockConfig    `mapstructure:"stock"`
	Log      LogConfig      `mapstructure:"log"`
}

// StoreConfig selects where catalog and stock data is persisted
type StoreConfig struct {
	Backend   string `mapstructure:"backend"` // memory, badger, redis, postgres
	KeyPrefix string `mapstructure:"key_prefix"`
	// StockCache is "kv" (one JSON document) or "redis" (a hash)
	StockCache string `mapstructure:"stock_cache"`
}

type BadgerConfig struct {
	Path     string `mapstructure:"path"`
	InMemory bool   `mapstructure:"in_memory"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	// Journal enables the catalog edit stream
	Journal       bool  `mapstructure:"journal"`
	JournalMaxLen int64 `mapstructure:"journal_max_len"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// CartConfig holds cart collaborator configuration
type CartConfig struct {
	Backend               string   `mapstructure:"backend"` // memory, http
	BaseURL               string   `mapstructure:"base_url"`
	Timeout               int      `mapstructure:"timeout"`
	MaxRetries            int      `mapstructure:"max_retries"`
	MaxRequestsPerSecond  int      `mapstructure:"max_requests_per_second"`
	CircuitBreakerSeconds int      `mapstructure:"circuit_breaker_seconds"`
	Proxies               []string `mapstructure:"proxies"`
}

// AdminConfig holds the shared edit-mode password. PasswordHash is a
// bcrypt hash; Password is hashed at startup when no hash is given.
type AdminConfig struct {
	PasswordHash string `mapstructure:"password_hash"`
	Password     string `mapstructure:"password"`
}

type PricingConfig struct {
	Tiers map[string][]domain.BulkPricingTier `mapstructure:"tiers"`
}

// StockConfig lists the branch locations. Empty means the built-in list.
type StockConfig struct {
	Locations []domain.StockLocation `mapstructure:"locations"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from configFile, or from an optional
// config.yaml in the working directory when configFile is empty, with .env
// and environment variable overrides
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.backend", "badger")
	v.SetDefault("store.key_prefix", "")
	v.SetDefault("store.stock_cache", "kv")

	v.SetDefault("badger.path", "./data/badger")
	v.SetDefault("badger.in_memory", false)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "mbs")
	v.SetDefault("database.user", "mbs_user")
	v.SetDefault("database.password", "mbs_pass")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.journal", false)
	v.SetDefault("redis.journal_max_len", 10000)

	v.SetDefault("cart.backend", "memory")
	v.SetDefault("cart.base_url", "http://localhost:3000/api")
	v.SetDefault("cart.timeout", 10)
	v.SetDefault("cart.max_retries", 2)
	v.SetDefault("cart.max_requests_per_second", 20)
	v.SetDefault("cart.circuit_breaker_seconds", 60)
	v.SetDefault("cart.proxies", []string{})

	v.SetDefault("admin.password_hash", "")
	v.SetDefault("admin.password", "")

	v.SetDefault("log.level", "info")
}
