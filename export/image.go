// Package export writes finished palettes to disk.
package export

import (
	"errors"
	"image"

	"github.com/swatch-cli/swatch/palette"
	xdraw "golang.org/x/image/draw"
)

// DefaultResolution is the side length in pixels of one swatch.
const DefaultResolution = 16

// ErrResolution is returned for swatch sizes below one pixel.
var ErrResolution = errors.New("resolution must be positive")

// Image draws grid with one resolution x resolution block per swatch.
// Hue columns run left to right and value rows top to bottom, darkest first.
func Image(grid palette.Grid, resolution int) (*image.RGBA, error) {
	if grid.Empty() {
		return nil, palette.ErrEmptyGrid
	}
	if resolution < 1 {
		return nil, ErrResolution
	}

	cols, rows := grid.Cols(), grid.Rows()

	src := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for j, row := range grid {
		for i, c := range row {
			src.Set(i, j, c)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols*resolution, rows*resolution))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return dst, nil
}
