package overrides

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FSNotifier forwards file system changes under the watcher's root to
// Watcher.Rescan. Bursts of events collapse into at most one pending rescan;
// since every rescan reads the whole workspace, no change is lost.
type FSNotifier struct {
	watcher *Watcher
	logger  *zap.Logger

	mu   sync.Mutex
	dirs map[string]struct{}
}

// NewFSNotifier creates a notifier for w.
func NewFSNotifier(w *Watcher) *FSNotifier {
	return &FSNotifier{
		watcher: w,
		logger:  w.Logger.Named("fsnotify"),
		dirs:    make(map[string]struct{}),
	}
}

// Run watches the workspace until ctx is cancelled.
func (n *FSNotifier) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := n.addTree(fw, n.watcher.Root); err != nil {
		return err
	}
	n.logger.Info("Watching workspace", zap.String("root", n.watcher.Root), zap.Int("directories", n.watched()))

	pending := make(chan struct{}, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-pending:
				n.watcher.Rescan(ctx)
			}
		}
	}()
	defer wg.Wait()

	trigger := func() {
		select {
		case pending <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if n.handle(fw, ev) {
				trigger()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			n.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}

// handle updates the watch list for ev and reports whether a rescan is due.
func (n *FSNotifier) handle(fw *fsnotify.Watcher, ev fsnotify.Event) bool {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if Skipped(filepath.Base(ev.Name), n.watcher.Exclude) {
				return false
			}
			if err := n.addTree(fw, ev.Name); err != nil {
				n.logger.Warn("Failed to watch directory", zap.String("path", ev.Name), zap.Error(err))
			}
			found, _ := Discover(ev.Name, n.watcher.filename(), n.watcher.Exclude, n.logger)
			return len(found) > 0
		}
	}

	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		if n.forget(ev.Name) {
			return true
		}
	}

	return n.watcher.Relevant(Event{Path: ev.Name, Op: convertOp(ev.Op)})
}

// addTree watches dir and every non-excluded directory below it.
func (n *FSNotifier) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			n.logger.Warn("Error searching directory", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && Skipped(d.Name(), n.watcher.Exclude) {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}
			return err
		}
		n.mu.Lock()
		n.dirs[path] = struct{}{}
		n.mu.Unlock()
		return nil
	})
}

// forget drops a removed directory and its descendants. It reports whether
// path was a watched directory, which may have held override files.
func (n *FSNotifier) forget(path string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.dirs[path]; !ok {
		return false
	}
	prefix := path + string(filepath.Separator)
	for dir := range n.dirs {
		if dir == path || strings.HasPrefix(dir, prefix) {
			delete(n.dirs, dir)
		}
	}
	return true
}

func (n *FSNotifier) watched() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.dirs)
}

func convertOp(op fsnotify.Op) Op {
	var out Op
	if op.Has(fsnotify.Create) {
		out |= OpCreate
	}
	if op.Has(fsnotify.Write) {
		out |= OpWrite
	}
	if op.Has(fsnotify.Remove) {
		out |= OpRemove
	}
	if op.Has(fsnotify.Rename) {
		out |= OpRename
	}
	return out
}
