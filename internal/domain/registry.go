package domain

import (
	"fmt"
	"sort"
	"sync"

	m "github.com/mouse-blink/aoc2023/internal/model"
)

// SolveOptions tunes how a solver treats questionable input.
type SolveOptions struct {
	// Strict turns recoverable input problems into errors.
	Strict bool
}

// Solver solves both parts of one puzzle.
type Solver interface {
	Puzzle() m.Puzzle
	Solve(lines []string, opts SolveOptions) (m.Answer, error)
}

// SolveFunc adapts a plain function to the Solver interface.
type SolveFunc func(lines []string, opts SolveOptions) (m.Answer, error)

type funcSolver struct {
	puzzle m.Puzzle
	solve  SolveFunc
}

// NewSolver creates a Solver for puzzle backed by fn.
func NewSolver(puzzle m.Puzzle, fn SolveFunc) Solver {
	return &funcSolver{puzzle: puzzle, solve: fn}
}

func (s *funcSolver) Puzzle() m.Puzzle {
	return s.puzzle
}

func (s *funcSolver) Solve(lines []string, opts SolveOptions) (m.Answer, error) {
	return s.solve(lines, opts)
}

// Registry maps day numbers to solvers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry creates a Registry holding solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}

	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds s. Registering a second solver for the same day fails.
func (r *Registry) Register(s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := s.Puzzle().Day
	if day <= 0 {
		return fmt.Errorf("invalid day %d", day)
	}

	if _, ok := r.solvers[day]; ok {
		return fmt.Errorf("solver for day %d already registered", day)
	}

	r.solvers[day] = s

	return nil
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Puzzles lists the registered puzzles ordered by day.
func (r *Registry) Puzzles() []m.Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	puzzles := make([]m.Puzzle, 0, len(r.solvers))
	for _, s := range r.solvers {
		puzzles = append(puzzles, s.Puzzle())
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].Day < puzzles[j].Day
	})

	return puzzles
}
