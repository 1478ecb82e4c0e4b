// Package logging builds the zerolog logger used by programs embedding the engine and bridges it into golurk.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nathanieltooley/gokemon-calc/config"
	"github.com/nathanieltooley/gokemon-calc/golurk"
)

var levels = map[string]zerolog.Level{
	"trace": zerolog.TraceLevel,
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// ParseLevel turns a config level name into a zerolog level
func ParseLevel(name string) (zerolog.Level, error) {
	level, ok := levels[name]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}

	return level, nil
}

// New builds a logger writing to out. Nil out writes to stdout.
func New(cfg config.LoggingConfig, out io.Writer) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if out == nil {
		out = os.Stdout
	}

	switch cfg.Format {
	case "console":
		out = zerolog.ConsoleWriter{Out: out}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zerolog.New(out).With().Timestamp().Logger().Level(level), nil
}

// Logr wraps a zerolog logger for golurk. V(1) logs at debug and V(2) at trace.
func Logr(logger *zerolog.Logger) logr.Logger {
	zerologr.SetMaxV(2)
	return zerologr.New(logger)
}

// Install builds the logger, makes it the global zerolog logger and hands it to golurk
func Install(cfg config.LoggingConfig, out io.Writer) (zerolog.Logger, error) {
	logger, err := New(cfg, out)
	if err != nil {
		return logger, err
	}

	log.Logger = logger
	golurk.SetInternalLogger(Logr(&logger))

	return logger, nil
}
