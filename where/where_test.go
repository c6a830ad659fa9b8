package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		for name, dir := range map[string]func() string{
			"Config":   Config,
			"Cache":    Cache,
			"Logs":     Logs,
			"Palettes": Palettes,
		} {
			Convey(name+"() should exist as a directory", func() {
				path := dir()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}

		Convey("History() should live in the cache", func() {
			So(filepath.Dir(History()), ShouldEqual, Cache())
		})

		Convey("Desktop() should not be created", func() {
			So(Desktop(), ShouldNotBeEmpty)
			So(filesystem.DirExists(Desktop()), ShouldBeFalse)
		})

		Convey("Config() should honor "+EnvConfigPath, func() {
			custom := filepath.Join("custom", "swatch")
			lo.Must0(os.Setenv(EnvConfigPath, custom))
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
			So(filesystem.DirExists(custom), ShouldBeTrue)
		})
	})
}
