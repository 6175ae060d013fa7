// Package controller provides output adapters for displaying puzzle solutions.
package controller

import (
	m "github.com/mouse-blink/aoc2023/internal/model"
)

// StartOption is a functional option for Start.
type StartOption func(*StartConfig)

// StartConfig holds the settings of a streaming session.
type StartConfig struct {
	Total   int
	Workers int
}

// WithRunProgress sizes the progress display for total inputs solved by
// workers concurrent workers.
func WithRunProgress(total, workers int) StartOption {
	return func(c *StartConfig) {
		c.Total = total
		c.Workers = workers
	}
}

// NewStartConfig applies options over a single-worker, empty session.
func NewStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{Workers: 1}
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return cfg
}

// UI defines how the workflow presents its results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start opens a streaming session for a run; Close ends it.
	Start(options ...StartOption) error
	Close()
	// DisplayStartingInput is called when worker picks up path.
	DisplayStartingInput(path m.Path, worker int)
	// DisplayCompletedInput is called when worker finishes an input.
	DisplayCompletedInput(report m.Report, worker int)
	// DisplaySolution prints both answers of a single solved input.
	DisplaySolution(answer m.Answer) error
	// DisplayPuzzles lists the registered puzzles.
	DisplayPuzzles(puzzles []m.Puzzle) error
	// DisplayRunSummary shows the outcome of a multi-input run.
	DisplayRunSummary(reports []m.Report) error
	// DisplayReports shows previously saved reports.
	DisplayReports(reports []m.Report) error
}

const (
	part1Format = "Solution for part 1 is %s\n"
	part2Format = "Solution for part 2 is %s\n"
)

func reportStatus(r m.Report) string {
	if r.Failed() {
		return "error: " + r.Error
	}

	return "ok"
}

func shortID(id string) string {
	const n = 8
	if len(id) <= n {
		return id
	}

	return id[:n]
}

func failedCount(reports []m.Report) int {
	failed := 0

	for _, r := range reports {
		if r.Failed() {
			failed++
		}
	}

	return failed
}
