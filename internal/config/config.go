// Package config provides configuration management for pare using Viper.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Dave-London/pare/internal/errors"
	"github.com/Dave-London/pare/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "pare"

// Config represents the top-level configuration structure.
type Config struct {
	Version        int                       `mapstructure:"version" yaml:"version"`
	DefaultClients []string                  `mapstructure:"default_clients" yaml:"default_clients"`
	Clients        map[string]ClientOverride `mapstructure:"clients" yaml:"clients"`
}

// ClientOverride contains configuration overrides for a specific client.
type ClientOverride struct {
	// ConfigPath replaces the default location of the client's config file.
	ConfigPath string `mapstructure:"config_path" yaml:"config_path"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support
	viper.SetEnvPrefix("PARE")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("default_clients", paths.Clients())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded configuration for unsupported client names.
func (c *Config) Validate() error {
	for _, name := range c.DefaultClients {
		if !paths.ValidClient(name) {
			return errors.Wrapf(errors.ErrInvalidConfig, "default_clients contains unknown client %q", name)
		}
	}
	for name := range c.Clients {
		if !paths.ValidClient(name) {
			return errors.Wrapf(errors.ErrInvalidConfig, "clients contains unknown client %q", name)
		}
	}
	return nil
}

// ConfigPathFor returns the config file path for the given client, applying
// any per-client override before falling back to the default location.
func (c *Config) ConfigPathFor(client, projectRoot string) (string, error) {
	if override, ok := c.Clients[client]; ok && override.ConfigPath != "" {
		return override.ConfigPath, nil
	}
	return paths.ConfigPath(client, projectRoot)
}
