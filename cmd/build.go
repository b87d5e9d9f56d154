package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"sptid/core/storage"
	"sptid/feature/locale"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildCatalog string
	buildLocales string
	buildOut     string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate per-language item tables",
	Long:  `Merges the item template catalog with every locale file and writes one lookup table per language.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadSettings()
		if err != nil {
			return err
		}
		defer logg.Sync()

		catalogPath := firstNonEmpty(buildCatalog, cfg.Build.CatalogFile)
		localesDir := firstNonEmpty(buildLocales, cfg.Build.LocalesDir)
		outDir := firstNonEmpty(buildOut, cfg.Build.OutputDir)

		catalogStore, err := storage.NewClient(filepath.Dir(catalogPath))
		if err != nil {
			return fmt.Errorf("failed to open catalog directory: %w", err)
		}
		source, err := storage.NewClient(localesDir)
		if err != nil {
			return fmt.Errorf("failed to open locales directory: %w", err)
		}
		output, err := storage.NewClient(outDir)
		if err != nil {
			return fmt.Errorf("failed to open output directory: %w", err)
		}

		builder := &locale.Builder{
			Catalog:     catalogStore,
			CatalogFile: filepath.Base(catalogPath),
			Source:      source,
			Output:      output,
			Logger:      logg,
		}

		logg.Info("Building item tables...",
			zap.String("catalog", catalogPath),
			zap.String("locales", localesDir),
			zap.String("out", outDir),
		)
		report, err := builder.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		fmt.Println("\n--- Build Report ---")
		fmt.Printf("Catalog Items:  %d\n", report.CatalogItems)
		fmt.Printf("Written:        %d\n", len(report.Written))
		fmt.Printf("Skipped:        %d\n", len(report.Skipped))
		fmt.Println("--------------------")
		langs := make([]string, 0, len(report.Entries))
		for lang := range report.Entries {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		for _, lang := range langs {
			fmt.Printf("  %-6s %d records\n", lang, report.Entries[lang])
		}
		for _, name := range report.Skipped {
			fmt.Printf("  [SKIP] %s\n", name)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildCatalog, "catalog", "", "path to the item template catalog (overrides build.catalog_file)")
	buildCmd.Flags().StringVar(&buildLocales, "locales", "", "directory of locale files (overrides build.locales_dir)")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "output directory for generated tables (overrides build.output_dir)")
	RootCmd.AddCommand(buildCmd)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
