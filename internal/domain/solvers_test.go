package domain

import (
	"errors"
	"testing"

	"github.com/mouse-blink/aoc2023/internal/domain/solvers/cubegame"
	"github.com/mouse-blink/aoc2023/internal/domain/solvers/schematic"
	m "github.com/mouse-blink/aoc2023/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSolvers_Samples(t *testing.T) {
	tests := []struct {
		name  string
		day   int
		lines []string
		want  m.Answer
	}{
		{
			name: "day 1",
			day:  1,
			lines: []string{
				"two1nine",
				"eightwothree",
				"abcone2threexyz",
				"xtwone3four",
				"4nineeightseven2",
				"zoneight234",
				"7pqrstsixteen",
			},
			want: m.Answer{Part1: "209", Part2: "281"},
		},
		{
			name: "day 2",
			day:  2,
			lines: []string{
				"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
				"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue",
				"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
				"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red",
				"Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green",
			},
			want: m.Answer{Part1: "8", Part2: "2286"},
		},
		{
			name: "day 3",
			day:  3,
			lines: []string{
				"467..114..",
				"...*......",
				"..35..633.",
				"......#...",
				"617*......",
				".....+.58.",
				"..592.....",
				"......755.",
				"...$.*....",
				".664.598..",
			},
			want: m.Answer{Part1: "4361", Part2: "467835"},
		},
	}

	registry := DefaultRegistry()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver, err := registry.Get(tt.day)
			require.NoError(t, err)

			got, err := solver.Solve(tt.lines, SolveOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolveSchematic_StrictOption(t *testing.T) {
	lines := []string{"99999999999999999999*1"}

	answer, err := solveSchematic(lines, SolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, m.Answer{Part1: "1", Part2: "0"}, answer)

	_, err = solveSchematic(lines, SolveOptions{Strict: true})
	assert.True(t, errors.Is(err, schematic.ErrMalformedNumber))
}

func TestSolveSchematic_WideGearRatio(t *testing.T) {
	answer, err := solveSchematic([]string{"9999999999*9999999999"}, SolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, "99999999980000000001", answer.Part2)
}

func TestSolveSchematic_PartSumPastUint64(t *testing.T) {
	for _, opts := range []SolveOptions{{}, {Strict: true}} {
		answer, err := solveSchematic([]string{"18446744073709551615*2"}, opts)
		require.NoError(t, err)
		assert.Equal(t, m.Answer{Part1: "18446744073709551617", Part2: "36893488147419103230"}, answer)
	}
}

func TestSolveCubeGame_MalformedHeader(t *testing.T) {
	_, err := solveCubeGame([]string{"Game x: 1 red"}, SolveOptions{})
	assert.True(t, errors.Is(err, cubegame.ErrMalformedGame))
}
