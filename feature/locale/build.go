package locale

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"sptid/core/storage"
	"sptid/feature/catalog"
	"sptid/feature/items/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Builder produces one generated table per locale file.
type Builder struct {
	// Catalog holds the item template catalog.
	Catalog storage.Client
	// CatalogFile is the catalog object name inside Catalog.
	CatalogFile string
	// Source holds the per-language locale files.
	Source storage.Client
	// Output receives the generated tables.
	Output storage.Client
	Logger *zap.Logger
}

// BuildReport summarizes a build run.
type BuildReport struct {
	CatalogItems int `json:"catalogItems"`
	// Entries maps each written language to its record count.
	Entries map[string]int `json:"entries"`
	Written []string       `json:"written"`
	// Skipped lists locale files that were malformed or produced no records.
	Skipped []string `json:"skipped"`
}

// Run executes the build. Missing inputs and malformed locale files are
// logged and skipped; only failures to write a table are returned.
func (b *Builder) Run(ctx context.Context) (*BuildReport, error) {
	report := &BuildReport{Entries: make(map[string]int)}

	idx, err := b.loadCatalog(ctx)
	if err != nil {
		b.Logger.Error("Failed to load catalog, building without enrichment", zap.Error(err))
		idx = catalog.NewIndex()
	}
	report.CatalogItems = idx.Len()

	files, err := b.Source.ListObjects(ctx, ".json")
	if errors.Is(err, storage.ErrNotFound) {
		b.Logger.Warn("Locales directory not found", zap.String("dir", b.Source.Root()))
		return report, nil
	}
	if err != nil {
		b.Logger.Error("Failed to list locale files", zap.String("dir", b.Source.Root()), zap.Error(err))
		return report, nil
	}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		table, ok := b.buildFile(ctx, name, idx)
		if !ok {
			report.Skipped = append(report.Skipped, name)
			continue
		}
		if len(table) == 0 {
			b.Logger.Info("No valid entries found, no file written", zap.String("file", name))
			report.Skipped = append(report.Skipped, name)
			continue
		}

		data, err := json.Marshal(table)
		if err != nil {
			return report, fmt.Errorf("failed to encode %s: %w", name, err)
		}
		if err := b.Output.PutObject(ctx, name, data); err != nil {
			return report, fmt.Errorf("failed to write %s: %w", name, err)
		}

		lang := strings.TrimSuffix(name, path.Ext(name))
		report.Entries[lang] = len(table)
		report.Written = append(report.Written, name)
		b.Logger.Info("Generated table", zap.String("file", name), zap.Int("entries", len(table)))
	}

	return report, nil
}

func (b *Builder) loadCatalog(ctx context.Context) (*catalog.Index, error) {
	if b.Catalog == nil || b.CatalogFile == "" {
		b.Logger.Warn("No catalog configured, building without enrichment")
		return catalog.NewIndex(), nil
	}
	return catalog.LoadFile(ctx, b.Catalog, b.CatalogFile, b.Logger)
}

// buildFile merges a single locale file. ok is false when the file could not
// be read or parsed.
func (b *Builder) buildFile(ctx context.Context, name string, idx *catalog.Index) (models.Table, bool) {
	data, err := b.Source.GetObject(ctx, name)
	if err != nil {
		b.Logger.Error("Failed to read locale file", zap.String("file", name), zap.Error(err))
		return nil, false
	}

	entries, err := ParseEntries(data)
	if err != nil {
		b.Logger.Error("Failed to parse locale file", zap.String("file", name), zap.Error(err))
		return nil, false
	}

	return Merge(entries, idx), true
}
