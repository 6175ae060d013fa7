// Package adapter contains the filesystem adapters used by the solver workflow.
package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/aoc2023/internal/model"
)

// ErrInvalidUTF8 is returned for inputs that are not UTF-8 text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// InputFSAdapter hides direct `os` access from the domain layer so the
// workflow can be tested without touching the disk.
type InputFSAdapter interface {
	// ReadLines loads the whole file and splits it into lines.
	ReadLines(path m.Path) (m.Input, error)
}

// LocalInputFSAdapter reads inputs from the local filesystem.
type LocalInputFSAdapter struct{}

// NewLocalInputFSAdapter constructs a LocalInputFSAdapter instance ready to
// be wired into the workflow.
func NewLocalInputFSAdapter() *LocalInputFSAdapter {
	return &LocalInputFSAdapter{}
}

// ReadLines reads path in full. The content must be valid UTF-8.
func (a *LocalInputFSAdapter) ReadLines(path m.Path) (m.Input, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Input{}, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return m.Input{}, fmt.Errorf("read %s: %w", path, ErrInvalidUTF8)
	}

	return m.Input{
		Path:  path,
		Hash:  hashBytes(data),
		Lines: SplitLines(data),
	}, nil
}

// SplitLines splits content on '\n' and drops a trailing '\r' from every
// line. A final newline does not produce an empty last line. Lines have no
// length limit.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}
