package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/aoc2023/internal/domain"
	m "github.com/mouse-blink/aoc2023/internal/model"
)

var runDayFlag int
var runParallelFlag int
var runReportsFlag string
var runStrictFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run --day N [inputs...]",
		Short: "Solve several inputs of one day",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Day:      runDayFlag,
				Inputs:   parsePaths(args),
				Strict:   flagOr(cmd, "strict", runStrictFlag, cfg.Strict),
				Parallel: flagOr(cmd, "parallel", runParallelFlag, cfg.Parallel),
				Reports:  m.Path(flagOr(cmd, "reports", runReportsFlag, cfg.ReportsDir)),
			})
		},
	}
	cmd.Flags().IntVarP(&runDayFlag, "day", "d", 0, "puzzle day to solve")
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of inputs solved concurrently")
	cmd.Flags().StringVarP(&runReportsFlag, "reports", "r", "", "directory to save reports to (empty disables saving)")
	cmd.Flags().BoolVar(&runStrictFlag, "strict", false, "fail on malformed input instead of skipping it")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func init() {
	rootCmd.AddCommand(runCmd)
}
