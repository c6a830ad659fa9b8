package config

import (
	"path/filepath"
	"testing"

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

		Convey("Setup should succeed without a config file", func() {
			So(Setup(), ShouldBeNil)

			Convey("And every default should be populated", func() {
				for name := range Default {
					So(viper.IsSet(name), ShouldBeTrue)
				}
				So(viper.GetInt(key.ExportResolution), ShouldEqual, 16)
				So(viper.GetString(key.ExportFilename), ShouldEqual, "palette-0.png")
				So(viper.GetBool(key.PalettePerChannelTint), ShouldBeFalse)
			})
		})

		Convey("Setup should read swatch.toml", func() {
			path := filepath.Join(where.Config(), "swatch.toml")
			lo.Must0(filesystem.API().WriteFile(path, []byte("[export]\nresolution = 32\n"), 0644))
			defer viper.Reset()

			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.ExportResolution), ShouldEqual, 32)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("export.per_channel"), ShouldEqual, "export_per_channel")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the resolution field", t, func() {
		field := Default[key.ExportResolution]

		Convey("Env should carry the swatch prefix", func() {
			So(field.Env(), ShouldEqual, "SWATCH_EXPORT_RESOLUTION")
		})

		Convey("Parse should follow the default's type", func() {
			v, err := field.Parse("24")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 24)

			_, err = field.Parse("large")
			So(err, ShouldNotBeNil)
		})

		Convey("Bool fields should parse booleans", func() {
			strict := Default[key.ExportStrict]
			v, err := strict.Parse("true")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
			So(strict.TypeName(), ShouldEqual, "bool")
		})
	})

	Convey("Every key should be registered once", t, func() {
		So(Default, ShouldHaveLength, key.DefinedFieldsCount)
		So(EnvExposed, ShouldHaveLength, key.DefinedFieldsCount)
	})
}
