// Package where resolves the directories swatch reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "SWATCH_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding swatch.toml.
// SWATCH_CONFIG_PATH takes precedence over the platform config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return mkdir(filepath.Join(base, constant.Swatch))
}

// Cache is the platform cache directory for swatch.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.Swatch))
}

func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Palettes is the last-resort export directory, used when the user has no Desktop.
func Palettes() string {
	return mkdir(filepath.Join(Config(), "palettes"))
}

// History is the file recording exported palettes.
func History() string {
	return filepath.Join(Cache(), "history.json")
}

// Desktop returns the user's Desktop directory, which may not exist. It is never created.
func Desktop() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Desktop")
}
