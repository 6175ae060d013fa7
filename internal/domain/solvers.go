package domain

import (
	"strconv"

	"github.com/mouse-blink/aoc2023/internal/domain/solvers/calibration"
	"github.com/mouse-blink/aoc2023/internal/domain/solvers/cubegame"
	"github.com/mouse-blink/aoc2023/internal/domain/solvers/schematic"
	m "github.com/mouse-blink/aoc2023/internal/model"
)

// DefaultSolvers returns the solvers for every implemented day.
func DefaultSolvers() []Solver {
	return []Solver{
		NewSolver(m.Puzzle{Day: 1, Title: "Trebuchet?!"}, solveCalibration),
		NewSolver(m.Puzzle{Day: 2, Title: "Cube Conundrum"}, solveCubeGame),
		NewSolver(m.Puzzle{Day: 3, Title: "Gear Ratios"}, solveSchematic),
	}
}

// DefaultRegistry returns a Registry with DefaultSolvers registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultSolvers()...)
	if err != nil {
		// Days in DefaultSolvers are distinct constants.
		panic(err)
	}

	return r
}

func solveCalibration(lines []string, _ SolveOptions) (m.Answer, error) {
	return m.Answer{
		Part1: formatUint(calibration.Digits(lines)),
		Part2: formatUint(calibration.Words(lines)),
	}, nil
}

func solveCubeGame(lines []string, _ SolveOptions) (m.Answer, error) {
	totals, err := cubegame.Solve(lines)
	if err != nil {
		return m.Answer{}, err
	}

	return m.Answer{
		Part1: formatUint(totals.PossibleIDs),
		Part2: formatUint(totals.Power),
	}, nil
}

func solveSchematic(lines []string, opts SolveOptions) (m.Answer, error) {
	var scanOpts []schematic.Option
	if opts.Strict {
		scanOpts = append(scanOpts, schematic.WithStrict())
	}

	res, err := schematic.NewScanner(scanOpts...).Scan(schematic.NewGrid(lines))
	if err != nil {
		return m.Answer{}, err
	}

	return m.Answer{
		Part1: res.PartNumberSum.String(),
		Part2: res.GearRatioSum.String(),
	}, nil
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
