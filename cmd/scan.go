package cmd

import (
	"fmt"
	"os"

	"sptid/feature/ids"

	"github.com/spf13/cobra"
)

var scanKnownOnly bool

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "List the object IDs found in a file",
	Long:  `Finds every 24 character hex run in a file and annotates the ones the resolver knows.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		cfg, logg, err := loadSettings()
		if err != nil {
			return err
		}
		defer logg.Sync()

		rt, err := openRuntime(cmd.Context(), cfg, logg, cfg.Workspace.Root != "")
		if err != nil {
			return err
		}

		matches := ids.Scan(string(data), rt.service)
		if scanKnownOnly {
			matches = ids.Known(matches)
		}

		for _, m := range matches {
			if m.Known {
				fmt.Printf("%6d  %s  %s\n", m.Start, m.ID, m.Name)
			} else {
				fmt.Printf("%6d  %s  (unknown)\n", m.Start, m.ID)
			}
		}
		fmt.Printf("\n%d IDs found\n", len(matches))
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanKnownOnly, "known", false, "only list IDs the resolver knows")
	RootCmd.AddCommand(scanCmd)
}
