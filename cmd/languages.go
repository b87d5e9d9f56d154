package cmd

import (
	"fmt"

	"sptid/core/language"

	"github.com/spf13/cobra"
)

// languagesCmd represents the languages command
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported language codes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range language.Supported {
			marker := " "
			if l.Code == language.Default {
				marker = "*"
			}
			fmt.Printf("%s %-6s %s\n", marker, l.Code, l.Name)
		}
	},
}

func init() {
	RootCmd.AddCommand(languagesCmd)
}
