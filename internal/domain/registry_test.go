package domain

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/aoc2023/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSolver(day int, answer m.Answer, err error) Solver {
	return NewSolver(m.Puzzle{Day: day, Title: "stub"}, func([]string, SolveOptions) (m.Answer, error) {
		return answer, err
	})
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r, err := NewRegistry(stubSolver(3, m.Answer{}, nil), stubSolver(1, m.Answer{}, nil))
	require.NoError(t, err)

	s, err := r.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Puzzle().Day)
}

func TestRegistry_RejectsDuplicateDay(t *testing.T) {
	_, err := NewRegistry(stubSolver(1, m.Answer{}, nil), stubSolver(1, m.Answer{}, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_RejectsInvalidDay(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	assert.Error(t, r.Register(stubSolver(0, m.Answer{}, nil)))
}

func TestRegistry_UnknownDay(t *testing.T) {
	r, err := NewRegistry(stubSolver(1, m.Answer{}, nil))
	require.NoError(t, err)

	_, err = r.Get(25)
	assert.True(t, errors.Is(err, ErrUnknownDay))
	assert.Contains(t, err.Error(), "25")
}

func TestRegistry_PuzzlesSortedByDay(t *testing.T) {
	r, err := NewRegistry(stubSolver(3, m.Answer{}, nil), stubSolver(1, m.Answer{}, nil), stubSolver(2, m.Answer{}, nil))
	require.NoError(t, err)

	puzzles := r.Puzzles()
	require.Len(t, puzzles, 3)

	for i, p := range puzzles {
		assert.Equal(t, i+1, p.Day)
	}
}

func TestDefaultRegistry(t *testing.T) {
	puzzles := DefaultRegistry().Puzzles()

	assert.Equal(t, []m.Puzzle{
		{Day: 1, Title: "Trebuchet?!"},
		{Day: 2, Title: "Cube Conundrum"},
		{Day: 3, Title: "Gear Ratios"},
	}, puzzles)
}
