// Package cubegame scores the cube conundrum: games of coloured cubes drawn
// from a bag, recorded as "Game <id>: <round>; <round>; ...".
package cubegame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedGame is returned when a game header carries no numeric id.
var ErrMalformedGame = errors.New("malformed game")

// MalformedGameError points at the offending input line (1-based).
type MalformedGameError struct {
	Line int
	Text string
}

func (e *MalformedGameError) Error() string {
	return fmt.Sprintf("%v on line %d: %q", ErrMalformedGame, e.Line, e.Text)
}

func (e *MalformedGameError) Unwrap() error {
	return ErrMalformedGame
}

const (
	headerSeparator = ": "
	roundSeparator  = "; "
	cubeSeparator   = ", "
)

// Counts maps a colour to a number of cubes.
type Counts map[string]uint64

// Limits is the bag content the elf asks about.
var Limits = Counts{"red": 12, "green": 13, "blue": 14}

// Game is one parsed input line.
type Game struct {
	ID uint64
	// Rounds holds per-round totals; repeated colours within a round add up.
	Rounds []Counts
	// Fewest holds the largest single draw seen per colour.
	Fewest Counts
}

// ParseGame parses a single line. A line without rounds yields a game with
// no rounds; a header without a numeric id is an error.
func ParseGame(line string) (Game, error) {
	header, record, hasRecord := strings.Cut(line, headerSeparator)

	id, err := parseID(header)
	if err != nil {
		return Game{}, err
	}

	game := Game{ID: id, Fewest: Counts{"red": 0, "green": 0, "blue": 0}}
	if !hasRecord {
		return game, nil
	}

	for _, round := range strings.Split(record, roundSeparator) {
		counts := Counts{}

		for _, draw := range strings.Split(round, cubeSeparator) {
			colour, n, ok := parseDraw(draw)
			if !ok {
				continue
			}

			counts[colour] += n
			if n > game.Fewest[colour] {
				game.Fewest[colour] = n
			}
		}

		game.Rounds = append(game.Rounds, counts)
	}

	return game, nil
}

func parseID(header string) (uint64, error) {
	fields := strings.Split(header, " ")
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: missing game id in %q", ErrMalformedGame, header)
	}

	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: game id %q: %w", ErrMalformedGame, fields[1], err)
	}

	return id, nil
}

// parseDraw reads "<n> <colour>". Anything after the colour is ignored.
func parseDraw(draw string) (string, uint64, bool) {
	fields := strings.Split(draw, " ")
	if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
		return "", 0, false
	}

	n, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return "", 0, false
	}

	return fields[1], n, true
}

// Possible reports whether every round fits within limits. Colours absent
// from limits are not checked.
func (g Game) Possible(limits Counts) bool {
	for _, round := range g.Rounds {
		for colour, limit := range limits {
			if round[colour] > limit {
				return false
			}
		}
	}

	return true
}

// Power multiplies the non-zero fewest counts. It is 0 when every count is 0.
func (g Game) Power() uint64 {
	power := uint64(1)
	seen := false

	for _, n := range g.Fewest {
		if n == 0 {
			continue
		}

		power *= n
		seen = true
	}

	if !seen {
		return 0
	}

	return power
}
