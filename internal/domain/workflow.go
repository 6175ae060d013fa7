// Package domain wires puzzle solvers to inputs, reports and the UI.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/aoc2023/internal/adapter"
	"github.com/mouse-blink/aoc2023/internal/controller"
	m "github.com/mouse-blink/aoc2023/internal/model"
)

// SolveArgs contains the arguments for solving a single input.
type SolveArgs struct {
	Day    int
	Input  m.Path
	Strict bool
}

// RunArgs contains the arguments for solving several inputs of one day.
type RunArgs struct {
	Day      int
	Inputs   []m.Path
	Strict   bool
	Parallel int
	// Reports is the directory reports are saved to. Empty disables saving.
	Reports m.Path
}

// ViewArgs contains the arguments for viewing saved reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Solve(args SolveArgs) error
	Run(ctx context.Context, args RunArgs) error
	List() error
	View(args ViewArgs) error
}

// Option configures a workflow.
type Option func(*workflow)

// WithClock overrides the time source used to stamp reports.
func WithClock(now func() time.Time) Option {
	return func(w *workflow) {
		w.now = now
	}
}

// WithIDGenerator overrides how report IDs are generated.
func WithIDGenerator(newID func() string) Option {
	return func(w *workflow) {
		w.newID = newID
	}
}

type workflow struct {
	inputs   adapter.InputFSAdapter
	reports  adapter.ReportStore
	ui       controller.UI
	registry *Registry
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	inputs adapter.InputFSAdapter,
	reports adapter.ReportStore,
	ui controller.UI,
	registry *Registry,
	logger *zap.Logger,
	opts ...Option,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &workflow{
		inputs:   inputs,
		reports:  reports,
		ui:       ui,
		registry: registry,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Solve reads one input, solves it and prints both answers.
func (w *workflow) Solve(args SolveArgs) error {
	if args.Input == "" {
		return ErrMissingArgument
	}

	solver, err := w.registry.Get(args.Day)
	if err != nil {
		return err
	}

	input, err := w.read(args.Input)
	if err != nil {
		return err
	}

	w.logger.Debug("solving input",
		zap.Int("day", args.Day),
		zap.String("input", string(args.Input)),
		zap.Int("lines", len(input.Lines)),
	)

	answer, err := solver.Solve(input.Lines, SolveOptions{Strict: args.Strict})
	if err != nil {
		return fmt.Errorf("solve %s: %w", args.Input, err)
	}

	return w.ui.DisplaySolution(answer)
}

// Run solves every input with at most args.Parallel concurrent workers.
// A failing input is recorded in its report and does not stop the others.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if len(args.Inputs) == 0 {
		return ErrMissingArgument
	}

	solver, err := w.registry.Get(args.Day)
	if err != nil {
		return err
	}

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	w.logger.Debug("starting run",
		zap.Int("day", args.Day),
		zap.Int("inputs", len(args.Inputs)),
		zap.Int("parallel", parallel),
	)

	if err := w.ui.Start(controller.WithRunProgress(len(args.Inputs), parallel)); err != nil {
		return err
	}

	results := make([]m.Report, len(args.Inputs))

	// Worker IDs 1..parallel; the group limit guarantees one is free.
	workers := make(chan int, parallel)
	for id := 1; id <= parallel; id++ {
		workers <- id
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, path := range args.Inputs {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			worker := <-workers
			defer func() { workers <- worker }()

			w.ui.DisplayStartingInput(path, worker)
			results[i] = w.solveReport(solver, path, SolveOptions{Strict: args.Strict})
			w.ui.DisplayCompletedInput(results[i], worker)

			return nil
		})
	}

	err = g.Wait()
	w.ui.Close()

	if err != nil {
		return fmt.Errorf("run day %d: %w", args.Day, err)
	}

	if err := w.ui.DisplayRunSummary(results); err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.reports.SaveReports(args.Reports, results); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}

		w.logger.Debug("saved reports", zap.String("dir", string(args.Reports)), zap.Int("count", len(results)))
	}

	failed := 0

	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRunFailed, failed, len(results))
	}

	return nil
}

// List prints the registered puzzles.
func (w *workflow) List() error {
	return w.ui.DisplayPuzzles(w.registry.Puzzles())
}

// View prints the reports saved in args.Reports.
func (w *workflow) View(args ViewArgs) error {
	if args.Reports == "" {
		return errors.New("reports directory not provided")
	}

	reports, err := w.reports.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.ui.DisplayReports(reports)
}

func (w *workflow) read(path m.Path) (m.Input, error) {
	input, err := w.inputs.ReadLines(path)
	if err != nil {
		return m.Input{}, fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	return input, nil
}

func (w *workflow) solveReport(solver Solver, path m.Path, opts SolveOptions) m.Report {
	puzzle := solver.Puzzle()
	report := m.Report{
		ID:       w.newID(),
		Day:      puzzle.Day,
		Title:    puzzle.Title,
		Input:    path,
		SolvedAt: w.now(),
	}

	input, err := w.read(path)
	if err != nil {
		w.logger.Warn("input failed", zap.String("input", string(path)), zap.Error(err))
		report.Error = err.Error()

		return report
	}

	report.Hash = input.Hash

	answer, err := solver.Solve(input.Lines, opts)
	if err != nil {
		w.logger.Warn("input failed", zap.String("input", string(path)), zap.Error(err))
		report.Error = err.Error()

		return report
	}

	report.Answer = answer

	return report
}
