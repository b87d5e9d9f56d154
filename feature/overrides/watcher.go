package overrides

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"sptid/core/storage"
	"sptid/feature/items/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds concurrent file parsing during a rescan.
const DefaultWorkers = 4

// CustomLayer receives the result of a rescan.
type CustomLayer interface {
	SetCustomLayer(table models.Table)
}

// Op is the kind of change an Event reports.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

// Has reports whether o includes op.
func (o Op) Has(op Op) bool { return o&op != 0 }

// Event is a change notification for one path.
type Event struct {
	Path string
	Op   Op
}

// Result describes one rescan.
type Result struct {
	Language string        `json:"language"`
	Files    int           `json:"files"`
	Items    int           `json:"items"`
	Failed   []string      `json:"failed,omitempty"`
	Duration time.Duration `json:"duration"`
	// Published is false when the rescan was abandoned and the previous
	// layer was kept.
	Published bool `json:"published"`
}

// Watcher rebuilds the custom layer from every override file in a workspace.
// Each rescan starts from scratch and publishes its result in one call.
type Watcher struct {
	Root     string
	Filename string
	Exclude  []string
	Workers  int
	Layer    CustomLayer
	// Language returns the active language code.
	Language func() string
	Logger   *zap.Logger

	mu sync.Mutex
}

// NewWatcher creates a watcher with the default filename, exclusions and
// worker count.
func NewWatcher(root string, layer CustomLayer, lang func() string, logger *zap.Logger) *Watcher {
	return &Watcher{
		Root:     root,
		Filename: DefaultFilename,
		Exclude:  DefaultExclude,
		Workers:  DefaultWorkers,
		Layer:    layer,
		Language: lang,
		Logger:   logger,
	}
}

// Relevant reports whether ev should trigger a rescan.
func (w *Watcher) Relevant(ev Event) bool {
	if filepath.Base(ev.Path) != w.filename() {
		return false
	}
	return ev.Op.Has(OpCreate) || ev.Op.Has(OpWrite) || ev.Op.Has(OpRemove) || ev.Op.Has(OpRename)
}

// Notify rescans when ev concerns an override file.
func (w *Watcher) Notify(ctx context.Context, ev Event) (Result, bool) {
	if !w.Relevant(ev) {
		return Result{}, false
	}
	w.Logger.Info("Detected override file change, reloading all", zap.String("path", ev.Path))
	return w.Rescan(ctx), true
}

// OnLanguageChange rescans so only the new language's payloads are served.
func (w *Watcher) OnLanguageChange(ctx context.Context) Result {
	return w.Rescan(ctx)
}

// Rescan discovers and parses every override file and replaces the custom
// layer with the merged result. Files are merged in path order, so a later
// file wins for an ID defined twice. Unreadable or malformed files are
// skipped. Rescans never overlap.
func (w *Watcher) Rescan(ctx context.Context) Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()
	lang := w.Language()
	res := Result{Language: lang}
	l := w.Logger.With(zap.String("language", lang))

	files, err := Discover(w.Root, w.filename(), w.Exclude, w.Logger)
	if err != nil {
		l.Warn("Cannot search workspace for override files", zap.String("root", w.Root), zap.Error(err))
	}
	res.Files = len(files)

	tables := make([]models.Table, len(files))
	if len(files) > 0 {
		store, err := storage.NewClient(w.Root)
		if err != nil {
			l.Error("Failed to open workspace", zap.Error(err))
			return res
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(w.workers())
		for i, name := range files {
			g.Go(func() error {
				tables[i] = w.loadFile(gctx, store, name, lang)
				return nil
			})
		}
		_ = g.Wait()
	}

	if err := ctx.Err(); err != nil {
		l.Warn("Rescan cancelled, keeping previous overrides", zap.Error(err))
		res.Duration = time.Since(start)
		return res
	}

	merged := make(models.Table)
	for i, table := range tables {
		if table == nil {
			res.Failed = append(res.Failed, files[i])
			continue
		}
		for id, rec := range table {
			if _, dup := merged[id]; dup {
				l.Debug("Override redefined by later file", zap.String("id", id), zap.String("file", files[i]))
			}
			merged[id] = rec
		}
	}

	w.Layer.SetCustomLayer(merged)
	res.Items = len(merged)
	res.Published = true
	res.Duration = time.Since(start)
	l.Info("Loaded custom items",
		zap.Int("files", res.Files),
		zap.Int("items", res.Items),
		zap.Int("failed", len(res.Failed)),
		zap.Duration("duration", res.Duration),
	)
	return res
}

// loadFile returns nil when the file could not be read or parsed.
func (w *Watcher) loadFile(ctx context.Context, store storage.Client, name, lang string) models.Table {
	data, err := store.GetObject(ctx, name)
	if err != nil {
		w.Logger.Error("Failed to read override file", zap.String("file", name), zap.Error(err))
		return nil
	}
	table, err := ParseFile(data, lang, w.Logger.With(zap.String("file", name)))
	if err != nil {
		w.Logger.Error("Failed to load override file", zap.String("file", name), zap.Error(err))
		return nil
	}
	w.Logger.Debug("Loaded override file", zap.String("file", name), zap.Int("items", len(table)))
	return table
}

func (w *Watcher) filename() string {
	if w.Filename == "" {
		return DefaultFilename
	}
	return w.Filename
}

func (w *Watcher) workers() int {
	if w.Workers <= 0 {
		return DefaultWorkers
	}
	return w.Workers
}
