package model

import "time"

// Report represents the outcome of solving a single input file.
type Report struct {
	ID       string
	Day      int
	Title    string
	Input    Path
	Hash     string
	Answer   Answer
	Error    string // empty when the input was solved
	SolvedAt time.Time
}

// Failed reports whether solving the input produced an error.
func (r Report) Failed() bool {
	return r.Error != ""
}
