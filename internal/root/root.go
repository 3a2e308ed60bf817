// Package root locates the toolpin project root.
package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/toolpin/internal/messages"
)

// markers identify a project root: a pinned-version manifest or a .toolpin
// config directory.
var markers = []string{".tool-versions", ".toolpin"}

// FindProjectRoot searches upwards from start for a directory containing a
// project marker. It returns the absolute root path and whether one was found.
func FindProjectRoot(start string) (string, bool, error) {
	if start == "" {
		return "", false, errors.New(messages.RootStartPathRequired)
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf(messages.RootResolvePathFmt, start, err)
	}
	for {
		for _, marker := range markers {
			path := filepath.Join(dir, marker)
			if _, err := os.Stat(path); err == nil {
				return dir, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf(messages.RootCheckPathFmt, path, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
