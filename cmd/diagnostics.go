package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// diagnosticsCmd represents the diagnostics command
var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Show which tables and overrides are loaded",
	Long:  `Loads the configured language and workspace and prints what the resolver would serve.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadSettings()
		if err != nil {
			return err
		}
		defer logg.Sync()

		rt, err := openRuntime(cmd.Context(), cfg, logg, cfg.Workspace.Root != "")
		if err != nil {
			return err
		}

		stats := rt.service.Stats()
		fmt.Println("\n--- Resolver Diagnostics ---")
		fmt.Printf("Language:       %s\n", stats.Language)
		fmt.Printf("Table Language: %s\n", orNone(stats.TableLanguage))
		fmt.Printf("Static Items:   %d\n", stats.StaticItems)
		fmt.Printf("Custom Items:   %d\n", stats.CustomItems)
		fmt.Printf("Total Items:    %d\n", stats.TotalItems)
		fmt.Printf("Translations:   %d\n", stats.Translations)
		fmt.Printf("Cached Tables:  %d\n", stats.CachedTables)
		fmt.Printf("Workspace:      %s\n", orNone(cfg.Workspace.Root))
		fmt.Println("----------------------------")

		if stats.TableLanguage == "" {
			fmt.Println("[WARN] No table could be loaded, only overrides resolve")
		} else if stats.TableLanguage != stats.Language {
			fmt.Printf("[WARN] Serving %s table as fallback for %s\n", stats.TableLanguage, stats.Language)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(diagnosticsCmd)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
