package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestCreate(t *testing.T) {
	Convey("Given an empty memory backend", t, func() {
		SetMemMapFs()
		path := filepath.Join("Desktop", "palettes", "palette-0.png")

		Convey("Create should make the missing directories", func() {
			f, err := Create(path)
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			So(DirExists(filepath.Dir(path)), ShouldBeTrue)
			So(DirExists(path), ShouldBeFalse)
		})

		Convey("GacheFs should write through the backend", func() {
			fs := GacheFs{}
			So(fs.MkdirAll("cache", os.ModePerm), ShouldBeNil)

			f, err := fs.OpenFile(filepath.Join("cache", "history.json"), os.O_CREATE|os.O_WRONLY, 0644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile(filepath.Join("cache", "history.json"))
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "{}")
		})

		Convey("DirExists should be false for missing paths", func() {
			So(DirExists("nowhere"), ShouldBeFalse)
		})
	})
}
