package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"
	"time"

	m "github.com/mouse-blink/aoc2023/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command output.
// Run progress goes to the error stream so the summary on stdout stays
// parseable.
type SimpleUI struct {
	cmd *cobra.Command

	mu       sync.Mutex
	session  StartConfig
	finished int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start resets the progress counters.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = NewStartConfig(options...)
	s.finished = 0

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplayStartingInput prints which worker picked up path.
func (s *SimpleUI) DisplayStartingInput(path m.Path, worker int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progressf("worker %d: solving %s\n", worker, path)
}

// DisplayCompletedInput prints the outcome of one input and the running count.
func (s *SimpleUI) DisplayCompletedInput(report m.Report, worker int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.finished++
	s.progressf("worker %d: %s %s [%d/%d]\n", worker, report.Input, reportStatus(report), s.finished, s.session.Total)
}

// DisplaySolution prints the two solution lines.
func (s *SimpleUI) DisplaySolution(answer m.Answer) error {
	s.printf(part1Format, answer.Part1)
	s.printf(part2Format, answer.Part2)

	return nil
}

// DisplayPuzzles prints a table of registered puzzles.
func (s *SimpleUI) DisplayPuzzles(puzzles []m.Puzzle) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Day", "Title", "Command"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, p := range puzzles {
		table.Append([]string{strconv.Itoa(p.Day), p.Title, p.Command()})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(puzzles)), "", ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayRunSummary prints one row per input in run order.
func (s *SimpleUI) DisplayRunSummary(reports []m.Report) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Input", "Part 1", "Part 2", "Status"})

	for _, r := range reports {
		table.Append([]string{string(r.Input), r.Answer.Part1, r.Answer.Part2, reportStatus(r)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Inputs %d", len(reports)),
		"",
		"",
		fmt.Sprintf("Failed %d", failedCount(reports)),
	})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayReports prints saved reports, oldest first.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"ID", "Day", "Input", "Part 1", "Part 2", "Solved At"})

	for _, r := range reports {
		part1, part2 := r.Answer.Part1, r.Answer.Part2
		if r.Failed() {
			part1, part2 = reportStatus(r), ""
		}

		table.Append([]string{
			shortID(r.ID),
			strconv.Itoa(r.Day),
			string(r.Input),
			part1,
			part2,
			r.SolvedAt.Format(time.RFC3339),
		})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func (s *SimpleUI) progressf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
