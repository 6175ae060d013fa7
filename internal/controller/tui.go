package controller

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/aoc2023/internal/model"
	"golang.org/x/term"
)

var (
	labelStyle    = lipgloss.NewStyle().Faint(true)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Width(6)
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	summaryStyle  = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
)

// program is the part of *tea.Program a streaming session needs.
type program interface {
	Send(msg tea.Msg)
	Run() (tea.Model, error)
}

// TUI implements UI using lipgloss styling and Bubble Tea for long lists
// and live run progress.
type TUI struct {
	output io.Writer
	// run starts an interactive program; swapped in tests.
	run func(model tea.Model) error
	// newProgram builds the inline program behind Start; swapped in tests.
	newProgram func(model tea.Model) program

	session program
	stopped chan error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.run = t.runProgram
	t.newProgram = t.inlineProgram

	return t
}

// Start launches the live progress view in the background.
func (t *TUI) Start(options ...StartOption) error {
	if t.session != nil {
		return errors.New("progress view already started")
	}

	t.session = t.newProgram(newRunModel(NewStartConfig(options...)))
	t.stopped = make(chan error, 1)

	go func(p program) {
		_, err := p.Run()
		t.stopped <- err
	}(t.session)

	return nil
}

// Close stops the progress view and waits for its final frame.
func (t *TUI) Close() {
	if t.session == nil {
		return
	}

	t.session.Send(runFinishedMsg{})

	if err := <-t.stopped; err != nil {
		_, _ = fmt.Fprintf(t.output, "progress view: %v\n", err)
	}

	t.session = nil
}

// DisplayStartingInput marks worker as busy with path.
func (t *TUI) DisplayStartingInput(path m.Path, worker int) {
	if t.session != nil {
		t.session.Send(inputStartedMsg{path: path, worker: worker})
	}
}

// DisplayCompletedInput advances the progress bar.
func (t *TUI) DisplayCompletedInput(report m.Report, worker int) {
	if t.session != nil {
		t.session.Send(inputCompletedMsg{report: report, worker: worker})
	}
}

// DisplaySolution prints the two solution lines with the answers highlighted.
func (t *TUI) DisplaySolution(answer m.Answer) error {
	_, err := fmt.Fprint(t.output,
		styledAnswer(part1Format, answer.Part1),
		styledAnswer(part2Format, answer.Part2),
	)

	return err
}

// DisplayPuzzles prints one styled line per puzzle.
func (t *TUI) DisplayPuzzles(puzzles []m.Puzzle) error {
	var b strings.Builder

	for _, p := range puzzles {
		fmt.Fprintf(&b, "%s %s  %s\n",
			dayStyle.Render(p.Command()),
			valueStyle.Render(p.Title),
			labelStyle.Render("aoc2023 "+p.Command()+" <input>"),
		)
	}

	fmt.Fprintln(&b, summaryStyle.Render(fmt.Sprintf("%d puzzles", len(puzzles))))

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayRunSummary prints one styled line per input in run order.
func (t *TUI) DisplayRunSummary(reports []m.Report) error {
	var b strings.Builder

	for _, r := range reports {
		b.WriteString(reportLine(r))
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("%d inputs, %d failed", len(reports), failedCount(reports))
	fmt.Fprintln(&b, summaryStyle.Render(summary))

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayReports prints saved reports, or opens a browsable list when they do
// not fit the terminal.
func (t *TUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(t.output, labelStyle.Render("No reports found"))
		return err
	}

	width, height := t.terminalSize()
	if height == 0 || len(reports)+1 <= height {
		var b strings.Builder
		for _, r := range reports {
			b.WriteString(reportLine(r))
			b.WriteString("\n")
		}

		_, err := fmt.Fprint(t.output, b.String())

		return err
	}

	return t.run(newReportsModel(reports, width, height))
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.output.(fdWriter)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// inlineProgram renders below the cursor so the summary that follows a run
// stays on screen.
func (t *TUI) inlineProgram(model tea.Model) program {
	return tea.NewProgram(model, tea.WithOutput(t.output))
}

func styledAnswer(format, value string) string {
	label := strings.TrimSuffix(format, "%s\n")

	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func reportLine(r m.Report) string {
	status := okStyle.Render(r.Answer.Part1 + " / " + r.Answer.Part2)
	if r.Failed() {
		status = failedStyle.Render(reportStatus(r))
	}

	return fmt.Sprintf("%s %s  %s",
		dayStyle.Render("day"+strconv.Itoa(r.Day)),
		status,
		pathStyle.Render(string(r.Input)),
	)
}
