package overrides

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// DefaultFilename is the reserved name of override files.
const DefaultFilename = ".sptids"

// DefaultExclude lists directory names that never contain override files.
var DefaultExclude = []string{"node_modules", "build", "dist", "out"}

// ErrRootNotFound is returned when the workspace root does not exist.
var ErrRootNotFound = errors.New("workspace root not found")

// Skipped reports whether the directory name is excluded from discovery.
// Hidden directories are always skipped.
func Skipped(name string, exclude []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, ex := range exclude {
		if name == ex {
			return true
		}
	}
	return false
}

// Discover walks root and returns the slash separated paths, relative to
// root, of every file named filename. Unreadable directories are logged and
// skipped.
func Discover(root, filename string, exclude []string, logger *zap.Logger) ([]string, error) {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, ErrRootNotFound
	}
	if err != nil {
		return nil, err
	}

	var found []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("Error searching directory", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && Skipped(d.Name(), exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != filename {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		found = append(found, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)
	return found, nil
}
