package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/where"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("When logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Convey("Nothing should be written", func() {
				So(Enabled(), ShouldBeFalse)
				Info("hidden")
				WithFields(Fields{"path": "palette-0.png"}).Info("hidden")
				files := lo.Must(filesystem.API().ReadDir(where.Logs()))
				So(files, ShouldBeEmpty)
			})
		})

		Convey("When logging is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			viper.Set(key.LogsJson, false)
			defer viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Convey("Entries should land in today's file", func() {
				Debugf("stage %s confirmed", "pick-hue-style")

				path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
				data := string(lo.Must(filesystem.API().ReadFile(path)))
				So(strings.Contains(data, "pick-hue-style"), ShouldBeTrue)
			})
		})
	})
}
