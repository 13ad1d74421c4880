package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	// StoreBackend selects the persistence implementation, "json" or
	// "sqlite".
	StoreBackend string `mapstructure:"store_backend"`

	// StorePath is the location of the persisted store. Empty means the
	// backend's default path.
	StorePath string `mapstructure:"store_path"`

	LogLevel string `mapstructure:"log_level"`

	ConfigPath string
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	DefaultStoreBackend = BackendJSON
	DefaultJSONPath     = "users.json"
	DefaultSQLitePath   = "healthtrack.sqlite3"
	DefaultLogLevel     = "warn"
)

// Load reads the config file at configPath, or the default
// ~/.healthtrack/config.yml when empty. A missing default file is fine; a
// personal tool has to run with zero setup.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	explicit := configPath != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err == nil {
			configPath = filepath.Join(home, ".healthtrack", "config.yml")
		}
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
	}

	v.SetDefault("store_backend", DefaultStoreBackend)
	v.SetDefault("store_path", "")
	v.SetDefault("log_level", DefaultLogLevel)

	// Allow environment variable overrides
	v.AutomaticEnv()
	v.SetEnvPrefix("HEALTHTRACK")
	v.BindEnv("store_backend")
	v.BindEnv("store_path")
	v.BindEnv("log_level")

	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			// the default config file is optional; an explicit one is not
			if explicit || !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.StorePath == "" {
		switch cfg.StoreBackend {
		case BackendSQLite:
			cfg.StorePath = DefaultSQLitePath
		default:
			cfg.StorePath = DefaultJSONPath
		}
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.StoreBackend != BackendJSON && c.StoreBackend != BackendSQLite {
		return fmt.Errorf("store_backend must be '%s' or '%s'", BackendJSON, BackendSQLite)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error")
	}

	return nil
}
