// Package logger builds zerolog loggers for the CLI and HTTP server.
package logger

import (
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables read by FromEnv.
const (
	EnvLevel  = "LINKEDINIFY_LOG_LEVEL"
	EnvFormat = "LINKEDINIFY_LOG_FORMAT"
)

// Options configures the logger
type Options struct {
	Level     string // debug, info, warn, error (default: info)
	Format    string // console or json (default: console)
	Component string
	Writer    io.Writer // default: os.Stderr
	NoColor   bool
}

// FromEnv builds Options from LINKEDINIFY_LOG_* variables.
func FromEnv() Options {
	return Options{
		Level:  strings.ToLower(os.Getenv(EnvLevel)),
		Format: strings.ToLower(os.Getenv(EnvFormat)),
	}
}

// New builds a logger. Console format writes human-readable lines; any other
// format writes one JSON object per event.
func New(opt Options) zerolog.Logger {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if strings.ToLower(opt.Format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.NoColor}
	}

	ctx := zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		ctx = ctx.Str("go_version", bi.GoVersion)
	}
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	return ctx.Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
