// Package model defines the data structures shared by the puzzle solvers.
package model

import "fmt"

// Puzzle identifies a registered Advent of Code 2023 puzzle.
type Puzzle struct {
	Day   int
	Title string
}

// Command returns the CLI subcommand name for the puzzle (e.g. "day3").
func (p Puzzle) Command() string {
	return fmt.Sprintf("day%d", p.Day)
}

// Answer holds the decimal renderings of both puzzle parts.
type Answer struct {
	Part1 string
	Part2 string
}
