package locale

// Config holds the build inputs and output.
type Config struct {
	// CatalogFile is the item template catalog.
	CatalogFile string `mapstructure:"catalog_file" default:"assets/database/templates/items.json" validate:"required"`
	// LocalesDir holds one `<lang>.json` locale file per language.
	LocalesDir string `mapstructure:"locales_dir" default:"assets/database/locales/global" validate:"required"`
	// OutputDir receives the generated tables.
	OutputDir string `mapstructure:"output_dir" default:"data/database" validate:"required"`
}
