package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available puzzles",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.List()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
