// Package cmd provides the root command and CLI setup for aoc2023.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/aoc2023/internal/adapter"
	"github.com/mouse-blink/aoc2023/internal/config"
	"github.com/mouse-blink/aoc2023/internal/controller"
	"github.com/mouse-blink/aoc2023/internal/domain"
	"github.com/mouse-blink/aoc2023/internal/logging"
)

// Process exit codes.
const (
	exitFailure         = 1
	exitMissingArgument = 2
	exitFileRead        = 3
)

var inputAdapter adapter.InputFSAdapter
var reportStore adapter.ReportStore
var registry = domain.DefaultRegistry()
var logger *zap.Logger
var logLevel zap.AtomicLevel
var workflow domain.Workflow
var ui controller.UI

// cfg holds the loaded configuration; flags left unset fall back to it.
var cfg = config.Default()

var configFlag string
var verboseFlag bool

func init() {
	var err error

	logger, logLevel, err = logging.New(false)
	if err != nil {
		logger, logLevel = zap.NewNop(), zap.NewAtomicLevel()
	}

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	inputAdapter = adapter.NewLocalInputFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		inputAdapter,
		reportStore,
		ui,
		registry,
		logger,
	)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "aoc2023",
		Short:        "Advent of Code 2023 puzzle solvers",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			loaded, err := config.Load(configFlag, ".")
			if err != nil {
				return err
			}

			cfg = loaded
			logging.SetVerbose(logLevel, verboseFlag || cfg.Verbose)

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default is ./.aoc2023.yaml)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging on stderr")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingArgument):
		return exitMissingArgument
	case errors.Is(err, domain.ErrFileRead):
		return exitFileRead
	default:
		return exitFailure
	}
}

// flagOr returns value when the named flag was set on the command line and
// fallback otherwise.
func flagOr[T any](cmd *cobra.Command, name string, value, fallback T) T {
	if cmd.Flags().Changed(name) {
		return value
	}

	return fallback
}
