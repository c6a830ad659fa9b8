package inline

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/export"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/palette"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestParseTint(t *testing.T) {
	Convey("ParseTint", t, func() {
		So(lo.Must(ParseTint("10,0,255")), ShouldResemble, palette.Tint{R: 10, B: 255})
		So(lo.Must(ParseTint(" 5 ")), ShouldResemble, palette.Tint{R: 5})
		So(lo.Must(ParseTint("")), ShouldResemble, palette.Tint{})

		_, err := ParseTint("1,2,3,4")
		So(err, ShouldNotBeNil)
		_, err = ParseTint("red")
		So(err, ShouldNotBeNil)
	})
}

func TestParseParams(t *testing.T) {
	Convey("ParseParams", t, func() {
		Convey("Should match style names fuzzily", func() {
			params, err := ParseParams("rad", 6, 5, 8, 9, "5,10,0", "inverse", -3)
			So(err, ShouldBeNil)
			So(params, ShouldResemble, engine.Params{
				HueStyle:    palette.Radial,
				Hues:        6,
				Values:      5,
				Saturation:  8,
				Brightness:  9,
				Tint:        palette.Tint{R: 5, G: 10},
				RenderStyle: palette.InversePairwiseGradient,
				OffsetSteps: -3,
			})
		})

		Convey("Should reject values outside the wizard bounds", func() {
			_, err := ParseParams("linear", 29, 3, 10, 10, "", "basic", 0)
			So(err, ShouldNotBeNil)

			_, err = ParseParams("linear", 3, 3, 10, 10, "7", "basic", 0)
			So(err, ShouldNotBeNil)

			_, err = ParseParams("spiral", 3, 3, 10, 10, "", "basic", 0)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a linear 3x3 palette", t, func() {
		var out bytes.Buffer
		params := engine.DefaultParams()
		params.Hues = 3

		options := &Options{
			Out:    &out,
			Params: params,
			Export: export.Options{Path: filepath.Join("inline", "palette-0.png"), Resolution: export.DefaultResolution},
		}

		Convey("Run should print the exported path", func() {
			result, err := Run(options)
			So(err, ShouldBeNil)
			So(strings.TrimSpace(out.String()), ShouldEqual, options.Export.Path)
			So(result.Width, ShouldEqual, 48)
			So(lo.Must(filesystem.API().Exists(options.Export.Path)), ShouldBeTrue)
		})

		Convey("Run with Json should print the document", func() {
			options.Json = true
			_, err := Run(options)
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Width, ShouldEqual, 48)
			So(output.Height, ShouldEqual, 48)
			So(output.Palette.Grid[1][0], ShouldEqual, "#ff0000")
			So(output.Palette.Grid[2][2], ShouldEqual, "#ffffff")
		})
	})

	Convey("Schema should describe the output", t, func() {
		data, err := json.Marshal(Schema(&Output{}))
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "render_style")
	})
}
