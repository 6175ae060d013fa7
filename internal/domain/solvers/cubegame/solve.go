package cubegame

import "strings"

// Totals holds both answers for a list of games.
type Totals struct {
	// PossibleIDs is the sum of the ids of games possible under Limits.
	PossibleIDs uint64
	// Power is the sum of every game's power.
	Power uint64
}

// Solve parses every non-blank line and accumulates both answers. It stops at
// the first malformed game header.
func Solve(lines []string) (Totals, error) {
	var totals Totals

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		game, err := ParseGame(line)
		if err != nil {
			return Totals{}, &MalformedGameError{Line: i + 1, Text: line}
		}

		// A game without a record proves nothing and scores no id.
		if len(game.Rounds) > 0 && game.Possible(Limits) {
			totals.PossibleIDs += game.ID
		}

		totals.Power += game.Power()
	}

	return totals, nil
}
