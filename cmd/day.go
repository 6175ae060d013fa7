package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/aoc2023/internal/domain"
	m "github.com/mouse-blink/aoc2023/internal/model"
)

func newDayCmd(puzzle m.Puzzle) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   puzzle.Command() + " <input>",
		Short: fmt.Sprintf("Solve day %d: %s", puzzle.Day, puzzle.Title),
		Long:  fmt.Sprintf(dayLongDescription, puzzle.Day, puzzle.Title),
		Args:  inputFileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Solve(domain.SolveArgs{
				Day:    puzzle.Day,
				Input:  m.Path(args[0]),
				Strict: flagOr(cmd, "strict", strict, cfg.Strict),
			})
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on malformed input instead of skipping it")

	return cmd
}

// inputFileArg requires exactly one input path.
func inputFileArg(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0 || args[0] == "":
		return domain.ErrMissingArgument
	case len(args) > 1:
		return fmt.Errorf("accepts 1 input file, received %d", len(args))
	default:
		return nil
	}
}

func init() {
	for _, puzzle := range registry.Puzzles() {
		rootCmd.AddCommand(newDayCmd(puzzle))
	}
}
