package items

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"sptid/core/language"
	"sptid/core/storage"
	"sptid/feature/items/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// snapshot is the language dependent state published by Load.
type snapshot struct {
	language      string
	tableLanguage string
	table         models.Table
	translations  map[string]string
}

// Stats summarizes the loaded state for diagnostics.
type Stats struct {
	Language string `json:"language"`
	// TableLanguage is the language whose table is actually served, which
	// differs from Language after a fallback. Empty when nothing loaded.
	TableLanguage string `json:"tableLanguage"`
	StaticItems   int    `json:"staticItems"`
	CustomItems   int    `json:"customItems"`
	TotalItems    int    `json:"totalItems"`
	Translations  int    `json:"translations"`
	CachedTables  int    `json:"cachedTables"`
}

// Service resolves object IDs against a static generated table and a custom
// override layer. Layers are replaced wholesale and never mutated once
// published, so lookups need no locks.
type Service struct {
	tables       storage.Client
	translations storage.Client
	logger       *zap.Logger
	cache        *tableCache
	loads        singleflight.Group
	switchMu     sync.Mutex

	state  atomic.Pointer[snapshot]
	custom atomic.Pointer[models.Table]
}

// Option configures a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	cacheSize int
	cacheTTL  time.Duration
}

// WithCache sets the size and expiry of the generated table memo.
func WithCache(size int, ttl time.Duration) Option {
	return func(o *serviceOptions) {
		o.cacheSize = size
		o.cacheTTL = ttl
	}
}

// NewService creates a new resolution service. translations may be nil, in
// which case Translate always echoes the key.
func NewService(tables, translations storage.Client, logger *zap.Logger, opts ...Option) *Service {
	o := serviceOptions{cacheSize: DefaultCacheSize, cacheTTL: DefaultCacheTTL}
	for _, opt := range opts {
		opt(&o)
	}

	return &Service{
		tables:       tables,
		translations: translations,
		logger:       logger,
		cache:        newTableCache(o.cacheSize, o.cacheTTL),
	}
}

// Load makes lang the active language. A missing or unreadable table falls
// back to English, and to an empty table when English is unavailable too.
// The same policy applies to the translation table. Load never fails.
func (s *Service) Load(ctx context.Context, lang string) {
	lang = strings.Clone(lang)
	next := &snapshot{language: lang}

	table, served := loadWithFallback(ctx, s, lang, "generated table", s.readTable)
	next.table, next.tableLanguage = table, served

	next.translations = map[string]string{}
	if s.translations != nil {
		next.translations, _ = loadWithFallback(ctx, s, lang, "translation table", s.readTranslations)
	}

	s.state.Store(next)
	s.logger.Info("Loaded language",
		zap.String("language", lang),
		zap.String("table_language", served),
		zap.Int("items", len(next.table)),
		zap.Int("translations", len(next.translations)),
	)
}

// loadWithFallback runs read for lang, then for the default language. It
// returns an empty value and "" when neither succeeds.
func loadWithFallback[T ~map[string]V, V any](ctx context.Context, s *Service, lang, kind string, read func(context.Context, string) (T, error)) (T, string) {
	value, err := read(ctx, lang)
	if err == nil {
		return value, lang
	}
	s.logger.Warn("Failed to load "+kind, zap.String("language", lang), zap.Error(err))

	if lang != language.Default {
		value, err = read(ctx, language.Default)
		if err == nil {
			s.logger.Info("Falling back to default language", zap.String("kind", kind), zap.String("language", language.Default))
			return value, language.Default
		}
		s.logger.Error("Failed to load default "+kind, zap.String("language", language.Default), zap.Error(err))
	}
	return make(T), ""
}

// readTable returns the decoded table for lang. Concurrent misses for the
// same language share one read.
func (s *Service) readTable(ctx context.Context, lang string) (models.Table, error) {
	if table, ok := s.cache.Get(lang); ok {
		return table, nil
	}

	v, err, _ := s.loads.Do(lang, func() (any, error) {
		if table, ok := s.cache.Get(lang); ok {
			return table, nil
		}

		data, err := s.tables.GetObject(ctx, lang+".json")
		if err != nil {
			return nil, err
		}
		var table models.Table
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("invalid table %s.json: %w", lang, err)
		}
		if table == nil {
			table = models.Table{}
		}

		s.cache.Set(lang, table)
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(models.Table), nil
}

func (s *Service) readTranslations(ctx context.Context, lang string) (map[string]string, error) {
	data, err := s.translations.GetObject(ctx, lang+".json")
	if err != nil {
		return nil, err
	}
	var labels map[string]string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, err
	}
	if labels == nil {
		labels = map[string]string{}
	}
	return labels, nil
}

// Lookup resolves id, preferring the custom layer over the static one.
func (s *Service) Lookup(id string) (models.ItemRecord, bool) {
	if custom := s.custom.Load(); custom != nil {
		if rec, ok := (*custom)[id]; ok {
			return rec, true
		}
	}
	if st := s.state.Load(); st != nil {
		if rec, ok := st.table[id]; ok {
			return rec, true
		}
	}
	return models.ItemRecord{}, false
}

// ListKnownIDs returns the union of both layers' IDs.
func (s *Service) ListKnownIDs() map[string]struct{} {
	custom := s.customTable()
	static := s.staticTable()

	ids := make(map[string]struct{}, len(custom)+len(static))
	for id := range static {
		ids[id] = struct{}{}
	}
	for id := range custom {
		ids[id] = struct{}{}
	}
	return ids
}

// SetCustomLayer replaces the custom layer with a copy of table.
func (s *Service) SetCustomLayer(table models.Table) {
	layer := maps.Clone(table)
	if layer == nil {
		layer = models.Table{}
	}
	s.custom.Store(&layer)
}

// ClearCustomLayer removes every custom record.
func (s *Service) ClearCustomLayer() {
	s.custom.Store(&models.Table{})
}

// Translate returns the UI label for key in the active language, or key
// itself when there is none.
func (s *Service) Translate(key string) string {
	if st := s.state.Load(); st != nil {
		if v, ok := st.translations[key]; ok {
			return v
		}
	}
	return key
}

// Language returns the active language, or "" before the first Load.
func (s *Service) Language() string {
	if st := s.state.Load(); st != nil {
		return st.language
	}
	return ""
}

// Stats returns counts for diagnostics.
func (s *Service) Stats() Stats {
	stats := Stats{
		CustomItems:  len(s.customTable()),
		TotalItems:   len(s.ListKnownIDs()),
		CachedTables: s.cache.Len(),
	}
	if st := s.state.Load(); st != nil {
		stats.Language = st.language
		stats.TableLanguage = st.tableLanguage
		stats.StaticItems = len(st.table)
		stats.Translations = len(st.translations)
	}
	return stats
}

// Purge drops memoized tables so the next Load reads from disk.
func (s *Service) Purge() {
	s.cache.Clear()
}

func (s *Service) staticTable() models.Table {
	if st := s.state.Load(); st != nil {
		return st.table
	}
	return nil
}

func (s *Service) customTable() models.Table {
	if custom := s.custom.Load(); custom != nil {
		return *custom
	}
	return nil
}
