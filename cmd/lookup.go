package cmd

import (
	"fmt"

	"sptid/feature/ids"
	"sptid/feature/items"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	lookupLang      string
	lookupWorkspace string
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup [id-or-text]",
	Short: "Resolve an object ID to its item record",
	Long: `Resolves an object ID, or the first known ID found in a piece of text,
against the generated tables and the workspace overrides.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadSettings()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if lookupLang != "" {
			cfg.Data.Language = lookupLang
		}
		if lookupWorkspace != "" {
			cfg.Workspace.Root = lookupWorkspace
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		rt, err := openRuntime(cmd.Context(), cfg, logg, cfg.Workspace.Root != "")
		if err != nil {
			return err
		}

		id, rec, ok := ids.Resolve(args[0], rt.service)
		if !ok {
			logg.Warn("No known ID found", zap.String("query", args[0]))
			return fmt.Errorf("no known item for %q", args[0])
		}

		fmt.Printf("\n--- %s (%s) ---\n", id, rt.service.Language())
		fmt.Println(items.Describe(rec, rt.service.Translate))
		return nil
	},
}

func init() {
	lookupCmd.Flags().StringVar(&lookupLang, "lang", "", "language code to resolve in")
	lookupCmd.Flags().StringVar(&lookupWorkspace, "workspace", "", "workspace root to read .sptids overrides from")
	RootCmd.AddCommand(lookupCmd)
}
