package export

import (
	"encoding/json"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func finished(params engine.Params) engine.Snapshot {
	return lo.Must(engine.Run(params)).Snapshot()
}

func TestImage(t *testing.T) {
	Convey("Given a 2x3 grid", t, func() {
		grid := palette.NewGrid(2, 3)
		grid[0][2] = palette.Color{R: 255}
		grid[1][0] = palette.Color{G: 255}

		Convey("Image should lay out one block per swatch", func() {
			img, err := Image(grid, 4)
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, 12)
			So(img.Bounds().Dy(), ShouldEqual, 8)

			So(img.RGBAAt(8, 0), ShouldResemble, color.RGBA{R: 255, A: 255})
			So(img.RGBAAt(11, 3), ShouldResemble, color.RGBA{R: 255, A: 255})
			So(img.RGBAAt(0, 4), ShouldResemble, color.RGBA{G: 255, A: 255})
			So(img.RGBAAt(3, 7), ShouldResemble, color.RGBA{G: 255, A: 255})
			So(img.RGBAAt(4, 4), ShouldResemble, color.RGBA{A: 255})
		})

		Convey("Image should reject bad input", func() {
			_, err := Image(grid, 0)
			So(errors.Is(err, ErrResolution), ShouldBeTrue)

			_, err = Image(palette.Grid{}, 16)
			So(errors.Is(err, palette.ErrEmptyGrid), ShouldBeTrue)
		})
	})
}

func TestPNG(t *testing.T) {
	Convey("Given a finished linear 3x3 run", t, func() {
		params := engine.DefaultParams()
		params.Hues = 3
		s := finished(params)
		path := filepath.Join("out", "nested", "palette-0.png")

		Convey("PNG should write a 48x48 image", func() {
			size, err := PNG(s.Final, path, DefaultResolution)
			So(err, ShouldBeNil)
			So(size, ShouldBeGreaterThan, 0)

			f := lo.Must(filesystem.API().Open(path))
			defer f.Close()

			img, err := png.Decode(f)
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, 48)
			So(img.Bounds().Dy(), ShouldEqual, 48)

			r, g, b, _ := img.At(0, 16).RGBA()
			So([]uint32{r >> 8, g >> 8, b >> 8}, ShouldResemble, []uint32{255, 0, 0})

			r, g, b, _ = img.At(47, 47).RGBA()
			So([]uint32{r >> 8, g >> 8, b >> 8}, ShouldResemble, []uint32{255, 255, 255})
		})
	})
}

type closeFailingFs struct {
	afero.Fs
}

func (fs closeFailingFs) Create(name string) (afero.File, error) {
	f, err := fs.Fs.Create(name)
	if err != nil {
		return nil, err
	}
	return closeFailingFile{f}, nil
}

type closeFailingFile struct {
	afero.File
}

func (f closeFailingFile) Close() error {
	_ = f.File.Close()
	return errors.New("disk full")
}

func TestCloseFailure(t *testing.T) {
	Convey("Given a filesystem that fails to close written files", t, func() {
		filesystem.SetFs(closeFailingFs{afero.NewMemMapFs()})
		Reset(filesystem.SetMemMapFs)

		params := engine.DefaultParams()
		params.Hues = 3
		s := finished(params)

		Convey("PNG should report the failure", func() {
			_, err := PNG(s.Final, "palette-0.png", DefaultResolution)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "disk full")
		})

		Convey("WriteJSON should report the failure", func() {
			_, err := NewDocument(s).WriteJSON("palette-0.png")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "close")
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given no export path", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.ExportPath, "")
		viper.Set(key.ExportFilename, "palette-0.png")
		desktop := where.Desktop()

		Convey("Without a Desktop it should fall back to the palettes directory", func() {
			So(Resolve(), ShouldEqual, filepath.Join(where.Palettes(), "palette-0.png"))
		})

		Convey("With a Desktop it should use it", func() {
			lo.Must0(filesystem.API().MkdirAll(desktop, os.ModePerm))
			So(Resolve(), ShouldEqual, filepath.Join(desktop, "palette-0.png"))

			Convey("And prefer Desktop/palettes when it exists", func() {
				lo.Must0(filesystem.API().MkdirAll(filepath.Join(desktop, "palettes"), os.ModePerm))
				So(Resolve(), ShouldEqual, filepath.Join(desktop, "palettes", "palette-0.png"))
			})
		})

		Convey("The file name should be sanitized", func() {
			viper.Set(key.ExportFilename, "my palette?.png")
			defer viper.Set(key.ExportFilename, "palette-0.png")
			So(filepath.Base(Resolve()), ShouldEqual, "my_palette_.png")
		})

		Convey("An explicit path should win", func() {
			viper.Set(key.ExportPath, "/tmp/custom.png")
			defer viper.Set(key.ExportPath, "")
			So(Resolve(), ShouldEqual, "/tmp/custom.png")
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a finished run", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.HistorySaveOnExport, true)
		lo.Must0(history.Clear())

		params := engine.DefaultParams()
		params.Hues = 4
		params.Values = 5
		params.RenderStyle = palette.PairwiseGradient
		s := finished(params)

		options := Options{Path: filepath.Join("out", "palette-0.png"), Resolution: 8, JSON: true}

		Convey("Run should write the image and its document", func() {
			result, err := Run(s, options)
			So(err, ShouldBeNil)
			So(result.Width, ShouldEqual, 32)
			So(result.Height, ShouldEqual, 40)
			So(result.JSONPath, ShouldEqual, filepath.Join("out", "palette-0.json"))

			var doc Document
			So(json.Unmarshal(lo.Must(filesystem.API().ReadFile(result.JSONPath)), &doc), ShouldBeNil)
			So(doc.RenderStyle, ShouldEqual, "pairwise-gradient")
			So(doc.Grid, ShouldResemble, s.Final.Hex())
			So(doc.Image, ShouldEqual, options.Path)

			Convey("And record it in the history", func() {
				records := lo.Must(history.List())
				So(records, ShouldHaveLength, 1)
				So(records[0].Width, ShouldEqual, 32)
				So(records[0].RenderStyle, ShouldEqual, "pairwise-gradient")
			})
		})

		Convey("Run should refuse unfinished runs", func() {
			_, err := Run(engine.New().Snapshot(), options)
			So(errors.Is(err, ErrNotDone), ShouldBeTrue)
		})
	})
}

func TestExitCode(t *testing.T) {
	Convey("ExitCode", t, func() {
		failure := errors.New("disk full")

		viper.Set(key.ExportStrict, false)
		So(ExitCode(nil), ShouldEqual, 0)
		So(ExitCode(failure), ShouldEqual, 0)

		viper.Set(key.ExportStrict, true)
		defer viper.Set(key.ExportStrict, false)
		So(ExitCode(nil), ShouldEqual, 0)
		So(ExitCode(failure), ShouldEqual, 1)
	})
}
