package util

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/filesystem"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("palette:1?.png"), ShouldEqual, "palette_1_.png")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("palette  0.png"), ShouldEqual, "palette_0.png")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-palette-"), ShouldEqual, "palette")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "palette", "palettes"), ShouldEqual, "1 palette")
		So(Quantify(0, "palette", "palettes"), ShouldEqual, "0 palettes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("red"), ShouldEqual, "Red")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestPaths(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("out/palette-0.png"), ShouldEqual, "palette-0")
		So(FileStem("palette"), ShouldEqual, "palette")
	})

	Convey("ReplaceExt", t, func() {
		So(ReplaceExt(filepath.Join("out", "palette-0.png"), ".json"), ShouldEqual, filepath.Join("out", "palette-0.json"))
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a palette in it", t, func() {
		filesystem.SetMemMapFs()
		dir := filepath.Join("palettes", "old")
		lo.Must0(filesystem.API().MkdirAll(dir, 0755))
		lo.Must0(filesystem.API().WriteFile(filepath.Join(dir, "palette-0.png"), []byte("png"), 0644))

		Convey("Delete should remove the whole tree", func() {
			So(Delete(dir), ShouldBeNil)
			So(lo.Must(filesystem.API().Exists(dir)), ShouldBeFalse)
		})

		Convey("Delete should fail on a missing path", func() {
			So(Delete("missing"), ShouldNotBeNil)
		})
	})
}
