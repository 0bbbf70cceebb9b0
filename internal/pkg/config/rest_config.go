package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// RestConfig aggregates all settings required by the REST API process
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Database DatabaseSettings `mapstructure:"database"`
	Storage  StorageSettings  `mapstructure:"storage"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// Validate checks the RestConfig and all nested settings
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the REST API configuration from a YAML file,
// applies defaults and environment overrides and validates the result.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setRestDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// PORT is the conventional container-level override
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// InitializeCliConfig builds the settings used by the maintenance CLI. It
// reads the same YAML file as the REST API when present and falls back to
// defaults otherwise, so the CLI works against a stock deployment without any
// configuration.
func InitializeCliConfig(configPath string) (*RestConfig, error) {
	if _, err := os.Stat(configPath); err != nil {
		v := viper.New()
		setRestDefaults(v)

		var cfg RestConfig
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("failed to build default config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid default configuration: %w", err)
		}
		return &cfg, nil
	}

	return InitializeRestConfig(configPath)
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "data/meetings.db")
	v.SetDefault("database.name", "meetings")
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("storage.upload_dir", "uploads")
	v.SetDefault("storage.export_dir", "exports")
	v.SetDefault("storage.max_upload_mb", 50)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
}
