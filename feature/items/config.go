package items

import "time"

// Config holds the runtime table settings.
type Config struct {
	// Language is the active language code.
	Language string `mapstructure:"language" default:"en" validate:"required,language"`
	// TablesDir holds the generated `<lang>.json` tables.
	TablesDir string `mapstructure:"tables_dir" default:"data/database" validate:"required"`
	// TranslationsDir holds the UI label tables.
	TranslationsDir string `mapstructure:"translations_dir" default:"data/translations"`
	// CacheSize is how many decoded tables are memoized.
	CacheSize int `mapstructure:"cache_size" default:"4" validate:"gte=0"`
	// CacheTTLSeconds bounds how long a memoized table is served.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300" validate:"gte=0"`
}

// Options converts the cache settings to service options.
func (c Config) Options() []Option {
	return []Option{WithCache(c.CacheSize, time.Duration(c.CacheTTLSeconds)*time.Second)}
}
