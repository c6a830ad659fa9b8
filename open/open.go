// Package open shows exported palettes with the system image viewer.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
)

// Start opens path without waiting, with export.open_with when set or the default handler otherwise.
func Start(path string) error {
	cmd, ok := command(path, viper.GetString(key.ExportOpenWith), runtime.GOOS)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	log.Infof("opening %s with %s", path, cmd.Path)
	return cmd.Start()
}

func command(path, app, goos string) (*exec.Cmd, bool) {
	if app != "" {
		switch goos {
		case constant.Windows:
			return exec.Command("cmd", "/C", "start", "", app, path), true
		case constant.Darwin:
			return exec.Command("open", "-a", app, path), true
		case constant.Linux:
			return exec.Command(app, path), true
		default:
			return nil, false
		}
	}

	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", path), true
	case constant.Darwin:
		return exec.Command("open", path), true
	case constant.Linux:
		return exec.Command("xdg-open", path), true
	default:
		return nil, false
	}
}
