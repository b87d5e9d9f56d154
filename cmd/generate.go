package cmd

import (
	"fmt"

	"sptid/feature/ids"

	"github.com/spf13/cobra"
)

var generateCount int

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fresh object IDs",
	Long:  `Prints new 24 character object IDs suitable for custom items in .sptids files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := ids.NewN(generateCount)
		if err != nil {
			return err
		}
		for _, id := range list {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "number of IDs to generate")
	RootCmd.AddCommand(generateCmd)
}
