package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/aoc2023/internal/model"
)

// reportItem adapts a report to the bubbles list.
type reportItem struct {
	report m.Report
}

func (i reportItem) FilterValue() string { return string(i.report.Input) }

// reportDelegate renders one report per line.
type reportDelegate struct{}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	ri, ok := item.(reportItem)
	if !ok {
		return
	}

	line := truncateToWidth(plainReportLine(ri.report), lm.Width())
	if index == lm.Index() {
		line = selectedStyle.Render(line)
	} else if ri.report.Failed() {
		line = failedStyle.Render(line)
	}

	_, _ = fmt.Fprint(w, line)
}

// reportsModel browses saved reports.
type reportsModel struct {
	reports list.Model
}

func newReportsModel(reports []m.Report, width, height int) reportsModel {
	items := make([]list.Item, 0, len(reports))
	for _, r := range reports {
		items = append(items, reportItem{report: r})
	}

	reportList := list.New(items, reportDelegate{}, width, height)
	reportList.Title = fmt.Sprintf("%d reports", len(reports))
	reportList.SetShowStatusBar(false)
	reportList.FilterInput.Placeholder = "Filter by input…"

	return reportsModel{reports: reportList}
}

func (rm reportsModel) Init() tea.Cmd {
	return nil
}

func (rm reportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.reports.SetSize(msg.Width, msg.Height)

		return rm, nil

	case tea.KeyMsg:
		if rm.reports.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return rm, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	rm.reports, cmd = rm.reports.Update(msg)

	return rm, cmd
}

func (rm reportsModel) View() string {
	return rm.reports.View()
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// plainReportLine renders a report without styling so it can be truncated
// safely.
func plainReportLine(r m.Report) string {
	result := r.Answer.Part1 + " / " + r.Answer.Part2
	if r.Failed() {
		result = reportStatus(r)
	}

	solvedAt := "unknown"
	if !r.SolvedAt.IsZero() {
		solvedAt = r.SolvedAt.Format(time.RFC3339)
	}

	return fmt.Sprintf("%-8s day%-2d  %s  %s  %s", shortID(r.ID), r.Day, result, r.Input, solvedAt)
}
