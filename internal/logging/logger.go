// Package logging builds the zap logger shared by the CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr. It logs warnings and
// above, or everything when verbose is set. The returned level can be
// changed later with SetVerbose.
func New(verbose bool) (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevelAt(levelFor(verbose))

	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		return nil, level, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, level, nil
}

// SetVerbose switches level between warn and debug.
func SetVerbose(level zap.AtomicLevel, verbose bool) {
	level.SetLevel(levelFor(verbose))
}

func levelFor(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}

	return zapcore.WarnLevel
}
