package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/aoc2023/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists and retrieves solve reports.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.Report) error
	LoadReports(dir m.Path) ([]m.Report, error)
}

// LocalReportStore writes one YAML file per report, named after the report ID.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

type answerYAML struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

type reportYAML struct {
	ID       string     `yaml:"id"`
	Day      int        `yaml:"day"`
	Title    string     `yaml:"title"`
	Input    string     `yaml:"input"`
	Hash     string     `yaml:"hash"`
	Answer   answerYAML `yaml:"answer"`
	Error    string     `yaml:"error,omitempty"`
	SolvedAt time.Time  `yaml:"solved_at"`
}

// SaveReports writes reports into dir, creating it when needed.
func (rs *LocalReportStore) SaveReports(dir m.Path, reports []m.Report) error {
	if len(reports) == 0 {
		return nil
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		if report.ID == "" {
			return fmt.Errorf("report for %s has no id", report.Input)
		}

		data, err := yaml.Marshal(toYAML(report))
		if err != nil {
			return fmt.Errorf("marshal report %s: %w", report.ID, err)
		}

		path := filepath.Join(string(dir), report.ID+reportExt)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write report %s: %w", report.ID, err)
		}
	}

	return nil
}

// LoadReports reads every report in dir, oldest first. A missing directory
// holds no reports.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var reports []m.Report

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(dir), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", entry.Name(), err)
		}

		var decoded reportYAML
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("unmarshal report %s: %w", entry.Name(), err)
		}

		reports = append(reports, fromYAML(decoded))
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if !reports[i].SolvedAt.Equal(reports[j].SolvedAt) {
			return reports[i].SolvedAt.Before(reports[j].SolvedAt)
		}

		return reports[i].ID < reports[j].ID
	})

	return reports, nil
}

func toYAML(r m.Report) reportYAML {
	return reportYAML{
		ID:       r.ID,
		Day:      r.Day,
		Title:    r.Title,
		Input:    string(r.Input),
		Hash:     r.Hash,
		Answer:   answerYAML{Part1: r.Answer.Part1, Part2: r.Answer.Part2},
		Error:    r.Error,
		SolvedAt: r.SolvedAt,
	}
}

func fromYAML(r reportYAML) m.Report {
	return m.Report{
		ID:       r.ID,
		Day:      r.Day,
		Title:    r.Title,
		Input:    m.Path(r.Input),
		Hash:     r.Hash,
		Answer:   m.Answer{Part1: r.Answer.Part1, Part2: r.Answer.Part2},
		Error:    r.Error,
		SolvedAt: r.SolvedAt,
	}
}
