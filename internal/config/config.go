package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string   `mapstructure:"env"`       // local, production
	LogLevel string   `mapstructure:"log_level"` // zap level name
	Timezone string   `mapstructure:"timezone"`  // IANA zone for day boundaries; empty means local
	Storage  Storage  `mapstructure:"storage"`
	Feedback Feedback `mapstructure:"feedback"`
}

type Storage struct {
	Driver   string `mapstructure:"driver"`    // sqlite, redis, memory
	Path     string `mapstructure:"path"`      // sqlite file
	RedisURL string `mapstructure:"redis_url"` // redis://host:port/db or host:port
	Key      string `mapstructure:"key"`       // snapshot key
}

type Feedback struct {
	Mode string `mapstructure:"mode"` // terminal, log, none
	Bell bool   `mapstructure:"bell"` // ring the terminal bell on level-up and badges
}

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Load reads configuration from an optional YAML file and POOKIE_* environment
// variables. file may be empty, in which case ./config and $HOME/.pookie4u
// are searched for config.yaml.
func Load(file string) (*Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.pookie4u")
	}

	v.SetDefault("env", "local")
	v.SetDefault("log_level", "warn")
	v.SetDefault("timezone", "")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.redis_url", "")
	v.SetDefault("storage.key", "@pookie4u_game_data")
	v.SetDefault("feedback.mode", "terminal")
	v.SetDefault("feedback.bell", true)

	v.SetEnvPrefix("POOKIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes enum-like fields and rejects unknown values.
func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case DriverSQLite, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}
	c.Feedback.Mode = strings.ToLower(strings.TrimSpace(c.Feedback.Mode))
	switch c.Feedback.Mode {
	case "terminal", "log", "none":
	default:
		return fmt.Errorf("unknown feedback mode: %q", c.Feedback.Mode)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone, defaulting to the machine's local zone.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return loc, nil
}
