// Package config wires application settings through viper: a registry of
// typed defaults, SHIKIGO_-prefixed environment bindings, and an optional
// TOML file in the user configuration directory.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/shikigo-cli/shikigo/constant"
	"github.com/shikigo-cli/shikigo/filesystem"
	"github.com/shikigo-cli/shikigo/where"
)

// EnvKeyReplacer maps dotted configuration keys onto environment variable
// segments, so shikimori.max_retries becomes SHIKIGO_SHIKIMORI_MAX_RETRIES.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads the configuration: registered defaults first, then environment
// overrides, then the config file when one exists.
func Setup() error {
	viper.SetConfigName(constant.Shikigo)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Shikigo)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// No file written yet; defaults and env cover everything.
			return nil
		}
		return err
	}

	return nil
}
