package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/aoc2023/internal/model"
)

func writeInput(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty file", "", []string{}},
		{"single line without newline", "12*34", []string{"12*34"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"only crlf", "\r\n", []string{""}},
		{"two trailing newlines keep one blank line", "a\n\n", []string{"a", ""}},
		{"mixed endings", "a\r\nb\nc", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines([]byte(tt.content)))
		})
	}
}

func TestSplitLines_VeryLongLine(t *testing.T) {
	row := strings.Repeat(".", 3<<20) + "7*"

	lines := SplitLines([]byte(row + "\n" + row + "\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, row, lines[0])
	assert.Equal(t, row, lines[1])
}

func TestLocalInputFSAdapter_ReadLines(t *testing.T) {
	path := writeInput(t, "467..114..\n...*......\n")
	adapter := NewLocalInputFSAdapter()

	input, err := adapter.ReadLines(path)
	require.NoError(t, err)

	assert.Equal(t, path, input.Path)
	assert.Equal(t, []string{"467..114..", "...*......"}, input.Lines)
	assert.Len(t, input.Hash, 64)
}

func TestLocalInputFSAdapter_HashDiffersByContent(t *testing.T) {
	adapter := NewLocalInputFSAdapter()

	a, err := adapter.ReadLines(writeInput(t, "a"))
	require.NoError(t, err)

	b, err := adapter.ReadLines(writeInput(t, "b"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestLocalInputFSAdapter_LongRow(t *testing.T) {
	row := strings.Repeat("1", 2<<20)
	path := writeInput(t, row+"\n*\n")

	input, err := NewLocalInputFSAdapter().ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{row, "*"}, input.Lines)
}

func TestLocalInputFSAdapter_InvalidUTF8(t *testing.T) {
	path := writeInput(t, "12\xff*34\n")

	_, err := NewLocalInputFSAdapter().ReadLines(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), string(path))
}

func TestLocalInputFSAdapter_MissingFile(t *testing.T) {
	adapter := NewLocalInputFSAdapter()
	missing := m.Path(filepath.Join(t.TempDir(), "missing.txt"))

	_, err := adapter.ReadLines(missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
