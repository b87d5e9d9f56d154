package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when an object or the store root does not exist.
var ErrNotFound = errors.New("object not found")

// Client defines the interface for table storage operations.
type Client interface {
	// Root returns the location the client reads from and writes to.
	Root() string
	// RootExists checks if the store root exists.
	RootExists(ctx context.Context) (bool, error)
	// GetObject reads a whole object. Missing objects return ErrNotFound.
	GetObject(ctx context.Context, name string) ([]byte, error)
	// PutObject replaces an object with data.
	PutObject(ctx context.Context, name string, data []byte) error
	// ListObjects lists object names directly under the root with the given
	// extension (e.g. ".json"), sorted.
	ListObjects(ctx context.Context, extension string) ([]string, error)
}

// NewClient creates a filesystem-backed client rooted at dir.
func NewClient(dir string) (Client, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage root must not be empty")
	}
	return &localClient{root: filepath.Clean(dir)}, nil
}

type localClient struct {
	root string
}

func (c *localClient) Root() string {
	return c.root
}

func (c *localClient) RootExists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := os.Stat(c.root)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", c.root, err)
	}
	return info.IsDir(), nil
}

func (c *localClient) GetObject(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := c.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// PutObject writes through a temporary file and renames it into place so a
// concurrent reader never sees a truncated table.
func (c *localClient) PutObject(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := c.resolve(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func (c *localClient) ListObjects(ctx context.Context, extension string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(c.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, c.root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.root, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if extension != "" && !strings.EqualFold(filepath.Ext(e.Name()), extension) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// resolve maps an object name to a path below the root.
func (c *localClient) resolve(name string) (string, error) {
	clean := filepath.Clean("/" + filepath.ToSlash(name))
	if clean == "/" {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	return filepath.Join(c.root, filepath.FromSlash(clean)), nil
}
