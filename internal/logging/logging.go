// Package logging builds the zerolog logger used by the jigsaw command.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "JIGSAW_LOG_LEVEL"
	EnvLogNoColor = "JIGSAW_LOG_NOCOLOR"
)

// Config selects the level and console styling.
type Config struct {
	Level   zerolog.Level
	NoColor bool
	Out     io.Writer
}

// DefaultConfig logs info and above to stderr, colored.
func DefaultConfig() Config {
	return Config{Level: zerolog.InfoLevel, Out: os.Stderr}
}

// New returns a console logger for app. Environment overrides are applied
// on top of cfg.
func New(app string, cfg Config) zerolog.Logger {
	ApplyEnv(&cfg)
	if cfg.Out == nil {
		cfg.Out = os.Stderr
	}
	output := zerolog.ConsoleWriter{
		Out:        cfg.Out,
		TimeFormat: time.RFC3339,
		NoColor:    cfg.NoColor,
	}
	return zerolog.New(output).Level(cfg.Level).With().Timestamp().Str("app", app).Logger()
}

// ApplyEnv overrides cfg from JIGSAW_LOG_LEVEL and JIGSAW_LOG_NOCOLOR.
// Unset or unparsable values leave cfg unchanged.
func ApplyEnv(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
