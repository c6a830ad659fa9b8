package export

import (
	"fmt"
	"image/png"

	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/palette"
)

// PNG encodes grid at path, creating parent directories and overwriting an existing file.
// It returns the number of bytes written.
func PNG(grid palette.Grid, path string, resolution int) (int64, error) {
	img, err := Image(grid, resolution)
	if err != nil {
		return 0, err
	}

	f, err := filesystem.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("encode %s: %w", path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}

	return stat.Size(), nil
}
