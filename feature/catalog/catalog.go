package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"sptid/core/storage"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Entry is one template record of the item catalog.
type Entry struct {
	// ID is the object ID the record is keyed by.
	ID string
	// Parent is the declared `_parent` ID, empty when absent.
	Parent string
	// Props is the `_props` bag. Numbers are kept as json.Number.
	Props map[string]any
	// HasProps is false when the record carries no `_props` object.
	HasProps bool
	// Raw is the undecoded record, used for nested path queries.
	Raw json.RawMessage
}

// Index is the in-memory catalog keyed by ID. It is immutable once loaded.
type Index struct {
	entries map[string]*Entry
}

// NewIndex builds an index from already decoded entries.
func NewIndex(entries ...*Entry) *Index {
	idx := &Index{entries: make(map[string]*Entry, len(entries))}
	for _, e := range entries {
		idx.entries[e.ID] = e
	}
	return idx
}

// Get returns the entry for id.
func (i *Index) Get(id string) (*Entry, bool) {
	if i == nil {
		return nil, false
	}
	e, ok := i.entries[id]
	return e, ok
}

// Len returns the number of entries.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.entries)
}

type rawEntry struct {
	Parent *string          `json:"_parent"`
	Props  *json.RawMessage `json:"_props"`
}

// Load parses catalog JSON (an object of ID -> record). A record that cannot
// be decoded is skipped with a warning; only a document that is not a JSON
// object at all is an error.
func Load(data []byte, logger *zap.Logger) (*Index, error) {
	var records map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	idx := &Index{entries: make(map[string]*Entry, len(records))}
	for id, raw := range records {
		entry, err := decodeEntry(id, raw)
		if err != nil {
			logger.Warn("Skipping malformed catalog record", zap.String("id", id), zap.Error(err))
			continue
		}
		idx.entries[id] = entry
	}
	return idx, nil
}

func decodeEntry(id string, raw json.RawMessage) (*Entry, error) {
	var re rawEntry
	if err := json.Unmarshal(raw, &re); err != nil {
		return nil, err
	}

	entry := &Entry{ID: id, Raw: raw}
	if re.Parent != nil {
		entry.Parent = *re.Parent
	}

	if re.Props != nil && !bytes.Equal(bytes.TrimSpace(*re.Props), []byte("null")) {
		dec := json.NewDecoder(bytes.NewReader(*re.Props))
		dec.UseNumber()
		var props map[string]any
		if err := dec.Decode(&props); err != nil {
			return nil, fmt.Errorf("invalid _props: %w", err)
		}
		entry.Props = props
		entry.HasProps = true
	}
	return entry, nil
}

// LoadFile reads and parses the catalog object `name` from client.
// A missing catalog is reported and yields an empty index.
func LoadFile(ctx context.Context, client storage.Client, name string, logger *zap.Logger) (*Index, error) {
	data, err := client.GetObject(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Catalog file not found", zap.String("file", name), zap.String("root", client.Root()))
		return NewIndex(), nil
	}
	if err != nil {
		return nil, err
	}

	idx, err := Load(data, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded catalog", zap.Int("items", idx.Len()))
	return idx, nil
}
