package export

import (
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/util"
	"github.com/swatch-cli/swatch/where"
)

// Resolve picks the output path. export.path wins when set; otherwise the file named by
// export.filename goes to ~/Desktop/palettes, ~/Desktop or the swatch palettes directory,
// whichever exists first.
func Resolve() string {
	if path := viper.GetString(key.ExportPath); path != "" {
		return path
	}

	name := util.SanitizeFilename(viper.GetString(key.ExportFilename))
	if name == "" {
		name = "palette-0.png"
	}

	if desktop := where.Desktop(); desktop != "" {
		for _, dir := range []string{filepath.Join(desktop, "palettes"), desktop} {
			if filesystem.DirExists(dir) {
				return filepath.Join(dir, name)
			}
		}
	}

	return filepath.Join(where.Palettes(), name)
}
