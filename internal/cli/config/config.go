// Package config loads chainspect CLI configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the chainspect configuration
type Config struct {
	Metadata MetadataConfig `mapstructure:"metadata"`
	Output   OutputConfig   `mapstructure:"output"`
}

// MetadataConfig locates the metadata snapshot to inspect
type MetadataConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig holds rendering defaults, overridable per invocation by flags
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// Load loads the configuration from chainspect.yml or chainspect.yaml in the
// working directory. A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("metadata.path", "metadata.json")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.no_color", false)

	v.SetConfigName("chainspect")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CHAINSPECT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Output.Format {
	case "text", "json", "table":
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be text, json, or table", cfg.Output.Format)
	}
}
