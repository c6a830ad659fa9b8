// Package config registers swatch settings and loads them through viper.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/where"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup applies defaults, binds SWATCH_* variables and reads swatch.toml if there is one.
func Setup() error {
	viper.SetConfigName(constant.Swatch)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Swatch)
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
			return nil
		}
		return err
	}

	return nil
}
