package domain

import "errors"

var (
	// ErrMissingArgument is returned when a solve command gets no input path.
	ErrMissingArgument = errors.New("path to input file not provided")
	// ErrFileRead wraps any failure to load an input file.
	ErrFileRead = errors.New("failed to read file")
	// ErrUnknownDay is returned for a day with no registered solver.
	ErrUnknownDay = errors.New("unknown day")
	// ErrRunFailed is returned by Run when at least one input failed.
	ErrRunFailed = errors.New("one or more inputs failed")
)
