package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI(t *testing.T) {
	tests := []struct {
		name   string
		useTTY bool
		want   string
	}{
		{name: "terminal gets styled output", useTTY: true, want: "*controller.TUI"},
		{name: "redirected output gets tables", useTTY: false, want: "*controller.SimpleUI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.SetOut(&bytes.Buffer{})

			var got string

			switch NewUI(cmd, tt.useTTY).(type) {
			case *TUI:
				got = "*controller.TUI"
			case *SimpleUI:
				got = "*controller.SimpleUI"
			}

			if got != tt.want {
				t.Fatalf("NewUI(useTTY=%v) = %s, want %s", tt.useTTY, got, tt.want)
			}
		})
	}
}

func TestIsTTY_NotATerminal(t *testing.T) {
	regular, err := os.Create(filepath.Join(t.TempDir(), "answers.txt"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer regular.Close()

	closed, err := os.Create(filepath.Join(t.TempDir(), "closed.txt"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	closed.Close()

	pipeReader, pipeWriter, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe() error = %v", err)
	}
	defer pipeReader.Close()
	defer pipeWriter.Close()

	tests := []struct {
		name   string
		output interface{ Write([]byte) (int, error) }
	}{
		{name: "buffer", output: &bytes.Buffer{}},
		{name: "regular file", output: regular},
		{name: "closed file", output: closed},
		{name: "pipe", output: pipeWriter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsTTY(tt.output) {
				t.Fatalf("IsTTY(%s) = true, want false", tt.name)
			}
		})
	}
}

func TestIsTTY_DevNullIsNotATerminal(t *testing.T) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Skipf("%s not available: %v", os.DevNull, err)
	}
	defer devNull.Close()

	if IsTTY(devNull) {
		t.Fatalf("IsTTY(%s) = true, want false", os.DevNull)
	}
}
