// Package config loads CLI defaults from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = ".aoc2023"
	configFileType = "yaml"
	envPrefix      = "AOC2023"

	keyReportsDir = "reports_dir"
	keyParallel   = "parallel"
	keyStrict     = "strict"
	keyVerbose    = "verbose"

	// DefaultReportsDir is where run saves reports unless configured otherwise.
	DefaultReportsDir = ".aoc2023-reports"
)

// Config holds the values flags fall back to.
type Config struct {
	ReportsDir string
	Parallel   int
	Strict     bool
	Verbose    bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ReportsDir: DefaultReportsDir,
		Parallel:   1,
	}
}

// Load reads configuration from path, or from .aoc2023.yaml in dir when path
// is empty. A missing default file is not an error; a missing explicit path
// is. Variables prefixed with AOC2023_ override file values.
func Load(path, dir string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(keyReportsDir, def.ReportsDir)
	v.SetDefault(keyParallel, def.Parallel)
	v.SetDefault(keyStrict, def.Strict)
	v.SetDefault(keyVerbose, def.Verbose)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		ReportsDir: v.GetString(keyReportsDir),
		Parallel:   v.GetInt(keyParallel),
		Strict:     v.GetBool(keyStrict),
		Verbose:    v.GetBool(keyVerbose),
	}

	if cfg.Parallel <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %d", keyParallel, cfg.Parallel)
	}

	return cfg, nil
}
