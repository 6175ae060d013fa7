package controller

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/aoc2023/internal/model"
)

func TestTUI_DisplaySolution(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplaySolution(m.Answer{Part1: "142", Part2: "281"}); err != nil {
		t.Fatalf("DisplaySolution() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Solution for part 1 is", "142", "Solution for part 2 is", "281"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if got := strings.Count(output, "\n"); got != 2 {
		t.Fatalf("output has %d lines, want 2\noutput:\n%s", got, output)
	}
}

func TestTUI_DisplayPuzzles(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplayPuzzles([]m.Puzzle{{Day: 2, Title: "Cube Conundrum"}}); err != nil {
		t.Fatalf("DisplayPuzzles() error = %v", err)
	}

	for _, want := range []string{"day2", "Cube Conundrum", "1 puzzles"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, buf.String())
		}
	}
}

func TestTUI_DisplayRunSummary(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	reports := []m.Report{
		{Day: 3, Input: "a.txt", Answer: m.Answer{Part1: "46", Part2: "408"}},
		{Day: 3, Input: "b.txt", Error: "boom"},
	}

	if err := tui.DisplayRunSummary(reports); err != nil {
		t.Fatalf("DisplayRunSummary() error = %v", err)
	}

	for _, want := range []string{"46 / 408", "a.txt", "error: boom", "2 inputs, 1 failed"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, buf.String())
		}
	}
}

func TestTUI_DisplayReports_PrintsWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	tui.run = func(tea.Model) error {
		t.Fatal("interactive program should not start for a non-terminal writer")
		return nil
	}

	reports := []m.Report{{ID: "r1", Day: 1, Input: "day1.txt", Answer: m.Answer{Part1: "142", Part2: "281"}}}
	if err := tui.DisplayReports(reports); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	if !strings.Contains(buf.String(), "day1.txt") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestTUI_DisplayReports_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplayReports(nil); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No reports found") {
		t.Fatalf("output = %q", buf.String())
	}
}

func manyReports(n int) []m.Report {
	reports := make([]m.Report, 0, n)
	for i := 0; i < n; i++ {
		reports = append(reports, m.Report{
			ID:       fmt.Sprintf("report-%03d", i),
			Day:      3,
			Input:    m.Path(fmt.Sprintf("inputs/%03d.txt", i)),
			Answer:   m.Answer{Part1: "1", Part2: "2"},
			SolvedAt: time.Date(2023, 12, 3, 0, i, 0, 0, time.UTC),
		})
	}

	return reports
}

func TestReportsModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		model := newReportsModel(manyReports(3), 80, 10)

		_, cmd := model.Update(key)
		if cmd == nil {
			t.Fatalf("Update(%v) returned nil cmd, want tea.Quit", key)
		}

		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("Update(%v) did not quit", key)
		}
	}
}

func TestReportsModel_WindowResize(t *testing.T) {
	model := newReportsModel(manyReports(50), 80, 10)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	rm, ok := updated.(reportsModel)
	if !ok {
		t.Fatalf("Update() returned %T", updated)
	}

	if rm.reports.Width() != 120 || rm.reports.Height() != 30 {
		t.Fatalf("size = %dx%d, want 120x30", rm.reports.Width(), rm.reports.Height())
	}
}

func TestReportsModel_ViewShowsFirstPage(t *testing.T) {
	model := newReportsModel(manyReports(50), 100, 12)

	view := model.View()
	if !strings.Contains(view, "inputs/000.txt") {
		t.Fatalf("view missing first report\nview:\n%s", view)
	}

	if strings.Contains(view, "inputs/049.txt") {
		t.Fatalf("view should paginate\nview:\n%s", view)
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated text", 6, "trunc…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestPlainReportLine(t *testing.T) {
	ok := plainReportLine(m.Report{ID: "abcdefghij", Day: 3, Input: "x.txt", Answer: m.Answer{Part1: "1", Part2: "2"}})
	for _, want := range []string{"abcdefgh", "day3", "1 / 2", "x.txt", "unknown"} {
		if !strings.Contains(ok, want) {
			t.Errorf("plainReportLine() = %q, missing %q", ok, want)
		}
	}

	failed := plainReportLine(m.Report{ID: "r", Day: 2, Input: "y.txt", Error: "boom"})
	if !strings.Contains(failed, "error: boom") {
		t.Errorf("plainReportLine() = %q, missing error", failed)
	}
}
