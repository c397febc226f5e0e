// Package config builds the explicit configuration value object the
// collector is constructed with. Components never consult ambient
// settings; everything they need is passed in here.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults.
const (
	// DefaultGenerator is the well-known swid_generator location.
	DefaultGenerator = "/usr/local/bin/swid_generator"

	// DefaultEpoch seeds the event-ID epoch when no collector database
	// is reachable.
	DefaultEpoch = 0x11223344
)

// Config carries every recognized collector option.
type Config struct {
	// Directory is the filesystem root for swidtag discovery.
	// Discovery is disabled when empty.
	Directory string

	// Generator is the swid_generator executable path.
	Generator string

	// Pretty forwards --pretty to the generator.
	Pretty bool

	// Full forwards --full to the generator.
	Full bool

	// Database is the sw-collector database URI. Persisted mode is
	// disabled when empty.
	Database string

	// Epoch is the manual fallback epoch used when no collector
	// database is reachable.
	Epoch uint32
}

// Default returns the built-in configuration: discovery disabled,
// generator at its well-known path, no database.
func Default() Config {
	return Config{
		Generator: DefaultGenerator,
		Epoch:     DefaultEpoch,
	}
}

// Load reads configuration from the environment (SWIMA_ prefix) and,
// when path is non-empty, from a YAML configuration file. File values
// override defaults; environment values override both.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SWIMA")
	v.AutomaticEnv()

	v.SetDefault("swid_directory", "")
	v.SetDefault("swid_generator", DefaultGenerator)
	v.SetDefault("swid_pretty", false)
	v.SetDefault("swid_full", false)
	v.SetDefault("swid_database", "")
	v.SetDefault("eid_epoch", DefaultEpoch)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return Config{
		Directory: v.GetString("swid_directory"),
		Generator: v.GetString("swid_generator"),
		Pretty:    v.GetBool("swid_pretty"),
		Full:      v.GetBool("swid_full"),
		Database:  v.GetString("swid_database"),
		Epoch:     v.GetUint32("eid_epoch"),
	}, nil
}
