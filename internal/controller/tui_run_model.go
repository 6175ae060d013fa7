package controller

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/aoc2023/internal/model"
)

// recentLimit bounds how many finished inputs stay on screen.
const recentLimit = 5

var (
	runTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	accentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	workerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// runModel shows a progress bar, what every worker is solving and the
// last few completed inputs.
type runModel struct {
	bar      progress.Model
	total    int
	workers  int
	active   map[int]m.Path
	finished int
	failed   int
	recent   []m.Report
	width    int
	done     bool
}

func newRunModel(cfg StartConfig) runModel {
	return runModel{
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
		total:   cfg.Total,
		workers: cfg.Workers,
		active:  make(map[int]m.Path, cfg.Workers),
	}
}

func (r runModel) Init() tea.Cmd {
	return nil
}

func (r runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width

		r.bar.Width = msg.Width - 8
		if r.bar.Width < 20 {
			r.bar.Width = 20
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		}

	case inputStartedMsg:
		r.active[msg.worker] = msg.path

	case inputCompletedMsg:
		delete(r.active, msg.worker)

		r.finished++
		if msg.report.Failed() {
			r.failed++
		}

		r.recent = append(r.recent, msg.report)
		if len(r.recent) > recentLimit {
			r.recent = r.recent[len(r.recent)-recentLimit:]
		}

	case runFinishedMsg:
		r.done = true
		return r, tea.Quit
	}

	return r, nil
}

func (r runModel) percent() float64 {
	if r.total == 0 {
		return 0
	}

	return float64(r.finished) / float64(r.total)
}

func (r runModel) View() string {
	summary := fmt.Sprintf("Progress: %s / %s  •  Workers: %s  •  Failed: %s",
		accentStyle.Render(strconv.Itoa(r.finished)),
		accentStyle.Render(strconv.Itoa(r.total)),
		accentStyle.Render(strconv.Itoa(r.workers)),
		accentStyle.Render(strconv.Itoa(r.failed)),
	)

	sections := []string{
		runTitleStyle.Render("Solving inputs"),
		summary,
		r.bar.ViewAs(r.percent()),
	}

	if !r.done {
		sections = append(sections, r.viewWorkers())
	}

	for _, report := range r.recent {
		sections = append(sections, reportLine(report))
	}

	if !r.done {
		sections = append(sections, footerStyle.Render("Press q to hide progress"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (r runModel) viewWorkers() string {
	lines := make([]string, 0, r.workers)

	for worker := 1; worker <= r.workers; worker++ {
		current := labelStyle.Render("idle")
		if path, ok := r.active[worker]; ok {
			text := string(path)
			if width := r.pathWidth(); width > 0 {
				text = truncateToWidth(text, width)
			}

			current = pathStyle.Render(text)
		}

		lines = append(lines, fmt.Sprintf("Worker %d: %s", worker, current))
	}

	return workerBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// pathWidth is zero until the terminal size is known.
func (r runModel) pathWidth() int {
	// border, padding and the "Worker N: " label
	width := r.width - 4 - len("Worker : ") - len(strconv.Itoa(r.workers))
	if width < 10 {
		return 0
	}

	return width
}
