package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// MarkerDir is the directory that marks a project-local notepad.
const MarkerDir = ".notepad"

// ErrRootNotFound is returned by FindRoot when no marker exists up to the filesystem root.
var ErrRootNotFound = errors.New("notepad root not found")

// FindRoot looks upwards from startDir for a directory containing MarkerDir
// and returns the absolute path of the marker directory itself.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, MarkerDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}
