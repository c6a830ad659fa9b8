// Package filesystem routes every file operation through a swappable afero backend,
// so tests can run against memory instead of the disk.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetFs switches to fs.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetMemMapFs switches to an empty in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// DirExists reports whether path exists and is a directory. Errors count as absent.
func DirExists(path string) bool {
	ok, err := backend.DirExists(path)
	return err == nil && ok
}

// Create truncates or creates the file at path, making missing parent directories first.
func Create(path string) (afero.File, error) {
	if err := backend.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return backend.Create(path)
}
