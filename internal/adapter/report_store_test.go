package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/aoc2023/internal/model"
)

func sampleReport(id string, solvedAt time.Time) m.Report {
	return m.Report{
		ID:       id,
		Day:      3,
		Title:    "Gear Ratios",
		Input:    m.Path("/abs/inputs/day3.txt"),
		Hash:     "abc123",
		Answer:   m.Answer{Part1: "4361", Part2: "467835"},
		SolvedAt: solvedAt,
	}
}

func TestLocalReportStore_SaveReports_WritesYAMLPerReport(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "reports")
	rs := NewReportStore()
	report := sampleReport("r1", time.Date(2023, 12, 3, 6, 0, 0, 0, time.UTC))

	require.NoError(t, rs.SaveReports(m.Path(dir), []m.Report{report}))

	data, err := os.ReadFile(filepath.Join(dir, "r1.yaml"))
	require.NoError(t, err)

	var decoded reportYAML
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, "r1", decoded.ID)
	assert.Equal(t, 3, decoded.Day)
	assert.Equal(t, "4361", decoded.Answer.Part1)
	assert.Equal(t, "467835", decoded.Answer.Part2)
	assert.Empty(t, decoded.Error)
	assert.NotContains(t, string(data), "error:")
}

func TestLocalReportStore_LoadReports_OldestFirst(t *testing.T) {
	t.Parallel()

	dir := m.Path(t.TempDir())
	rs := NewReportStore()
	base := time.Date(2023, 12, 3, 6, 0, 0, 0, time.UTC)

	late := sampleReport("b-late", base.Add(time.Hour))
	early := sampleReport("z-early", base)
	failed := sampleReport("a-early", base)
	failed.Error = "failed to read file"
	failed.Answer = m.Answer{}

	require.NoError(t, rs.SaveReports(dir, []m.Report{late, early, failed}))

	got, err := rs.LoadReports(dir)
	require.NoError(t, err)

	want := []m.Report{failed, early, late}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadReports() mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalReportStore_LoadReports_IgnoresOtherFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	got, err := NewReportStore().LoadReports(m.Path(dir))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalReportStore_LoadReports_MissingDir(t *testing.T) {
	t.Parallel()

	got, err := NewReportStore().LoadReports(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocalReportStore_LoadReports_InvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: [unclosed"), 0o600))

	_, err := NewReportStore().LoadReports(m.Path(dir))
	assert.ErrorContains(t, err, "bad.yaml")
}

func TestLocalReportStore_SaveReports_RequiresID(t *testing.T) {
	t.Parallel()

	err := NewReportStore().SaveReports(m.Path(t.TempDir()), []m.Report{{Input: "x.txt"}})
	assert.ErrorContains(t, err, "no id")
}

func TestLocalReportStore_SaveReports_NothingToSave(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "never-created")
	require.NoError(t, NewReportStore().SaveReports(m.Path(dir), nil))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
