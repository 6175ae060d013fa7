package controller

import (
	m "github.com/mouse-blink/aoc2023/internal/model"
)

// Messages fed to runModel while a run is in flight.
type inputStartedMsg struct {
	path   m.Path
	worker int
}

type inputCompletedMsg struct {
	report m.Report
	worker int
}

type runFinishedMsg struct{}
