// Package config loads jigsaw command settings from a TOML file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/jigsaw/internal/logging"
)

// Config holds everything the jigsaw command needs.
type Config struct {
	Input        string
	Output       string
	AllowPartial bool
	Strict       bool
	Render       bool
	LogLevel     zerolog.Level
	LogNoColor   bool

	// OutputSet is true when the file names a non-empty output; callers
	// with a different default output (puzzle generation) check it.
	OutputSet bool
}

// Default returns the settings used when no file is given: read
// problem.csv, write solution.csv.
func Default() Config {
	return Config{
		Input:    "problem.csv",
		Output:   "solution.csv",
		LogLevel: zerolog.InfoLevel,
	}
}

type fileConfig struct {
	Input        string `toml:"input"`
	Output       string `toml:"output"`
	AllowPartial bool   `toml:"allow_partial"`
	Strict       bool   `toml:"strict"`
	Render       bool   `toml:"render"`
	LogLevel     string `toml:"log_level"`
	LogNoColor   bool   `toml:"log_no_color"`
}

// Load reads path and applies every key it defines over Default().
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load jigsaw config: %w", err)
	}
	return apply(Default(), raw, meta)
}

// Parse is Load for in-memory TOML.
func Parse(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse jigsaw config: %w", err)
	}
	return apply(Default(), raw, meta)
}

func apply(cfg Config, raw fileConfig, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if meta.IsDefined("input") {
		if v := strings.TrimSpace(raw.Input); v != "" {
			cfg.Input = v
		}
	}
	if meta.IsDefined("output") {
		if v := strings.TrimSpace(raw.Output); v != "" {
			cfg.Output = v
			cfg.OutputSet = true
		}
	}
	if meta.IsDefined("allow_partial") {
		cfg.AllowPartial = raw.AllowPartial
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("render") {
		cfg.Render = raw.Render
	}
	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return Config{}, fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		cfg.LogLevel = lvl
	}
	if meta.IsDefined("log_no_color") {
		cfg.LogNoColor = raw.LogNoColor
	}
	return cfg, nil
}
