// Package config loads drfriend settings from command-line flags,
// DRFRIEND_* environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables, e.g. DRFRIEND_DB
const EnvPrefix = "DRFRIEND"

// Storage backends
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Flag and config file keys
const (
	KeyDB              = "db"
	KeyBackend         = "backend"
	KeyLogLevel        = "log-level"
	KeyLogFormat       = "log-format"
	KeyAddr            = "addr"
	KeyMaxUploadBytes  = "max-upload-bytes"
	KeyShutdownTimeout = "shutdown-timeout"
	KeyRateLimit       = "rate-limit"
)

// ErrInvalidConfig is returned when a setting has an unsupported value
var ErrInvalidConfig = errors.New("invalid config")

// Config содержит все параметры конфигурации drfriend
type Config struct {
	// --- Хранилище ---

	// Путь к файлу базы данных
	DBPath string `mapstructure:"db"`
	// Backend хранилища (bolt, sqlite)
	Backend string `mapstructure:"backend"`

	// --- Логирование ---

	// Уровень логирования (debug, info, warn, error)
	LogLevel string `mapstructure:"log-level"`
	// Формат логов (json, text)
	LogFormat string `mapstructure:"log-format"`

	// --- HTTP API ---

	// Адрес HTTP-сервера
	Addr string `mapstructure:"addr"`
	// Максимальный размер загружаемого файла в байтах
	MaxUploadBytes int64 `mapstructure:"max-upload-bytes"`
	// Таймаут graceful shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
	// Лимит изменяющих запросов в минуту с одного адреса, 0 отключает лимит
	RateLimit int `mapstructure:"rate-limit"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		DBPath:          "drfriend.db",
		Backend:         BackendBolt,
		LogLevel:        "warn",
		LogFormat:       "text",
		Addr:            "127.0.0.1:8080",
		MaxUploadBytes:  32 << 20,
		ShutdownTimeout: 5 * time.Second,
		RateLimit:       120,
	}
}

// RegisterFlags adds the global flags to fs with their default values
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyDB, d.DBPath, "Path to local database")
	fs.String(KeyBackend, d.Backend, "Storage backend: bolt or sqlite")
	fs.String(KeyLogLevel, d.LogLevel, "Log level: debug, info, warn, error")
	fs.String(KeyLogFormat, d.LogFormat, "Log format: text or json")
}

// RegisterServerFlags adds the HTTP API flags to fs
func RegisterServerFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyAddr, d.Addr, "HTTP listen address")
	fs.Int64(KeyMaxUploadBytes, d.MaxUploadBytes, "Maximum upload size in bytes")
	fs.Duration(KeyShutdownTimeout, d.ShutdownTimeout, "Graceful shutdown timeout")
	fs.Int(KeyRateLimit, d.RateLimit, "Write requests per minute per client, 0 disables the limit")
}

// Load builds the configuration. Priority from highest to lowest:
// flags set on the command line, DRFRIEND_* environment variables,
// the config file (if configFile is not empty), defaults.
func Load(fs *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault(KeyDB, d.DBPath)
	v.SetDefault(KeyBackend, d.Backend)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyAddr, d.Addr)
	v.SetDefault(KeyMaxUploadBytes, d.MaxUploadBytes)
	v.SetDefault(KeyShutdownTimeout, d.ShutdownTimeout)
	v.SetDefault(KeyRateLimit, d.RateLimit)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting has a supported value
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, KeyDB)
	}

	switch c.Backend {
	case BackendBolt, BackendSQLite:
	default:
		return fmt.Errorf("%w: %s %q, use one of: %s, %s", ErrInvalidConfig, KeyBackend, c.Backend, BackendBolt, BackendSQLite)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyLogLevel, err)
	}

	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("%w: %s %q, use one of: json, text", ErrInvalidConfig, KeyLogFormat, c.LogFormat)
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: %s must be > 0", ErrInvalidConfig, KeyMaxUploadBytes)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: %s must be > 0", ErrInvalidConfig, KeyShutdownTimeout)
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("%w: %s must be >= 0", ErrInvalidConfig, KeyRateLimit)
	}

	return nil
}
