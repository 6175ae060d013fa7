package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/aoc2023/internal/domain"
	m "github.com/mouse-blink/aoc2023/internal/model"
)

var viewReportsFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved reports",
		Long:  viewLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{
				Reports: m.Path(flagOr(cmd, "reports", viewReportsFlag, cfg.ReportsDir)),
			})
		},
	}
	cmd.Flags().StringVarP(&viewReportsFlag, "reports", "r", "", "directory to read reports from")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
