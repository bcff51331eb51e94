package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/achuchra/ts-types-from-strapi/internal/errors"
)

const envPrefix = "STRAPI_TYPES"

// Load resolves configuration with the following priority (highest to
// lowest):
//  1. Environment variables (STRAPI_TYPES_*)
//  2. Config file (configFile if given, else .ts-types-from-strapi.yaml in
//     the working directory)
//  3. Default values
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".ts-types-from-strapi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., STRAPI_TYPES_WATCH_DEBOUNCE_MS)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("filter")
	v.BindEnv("watch.debounce_ms")
	v.BindEnv("log.level")
	v.BindEnv("output.trailing_newline")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is acceptable; an explicitly
		// requested one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("filter", defaults.Filter)
	v.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("output.trailing_newline", defaults.Output.TrailingNewline)
}
