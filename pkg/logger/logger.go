package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/best-life-api/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a new zerolog logger with structured output
func New(cfg config.LogConfig, service string) zerolog.Logger {
	return newLogger(cfg, service, os.Stdout)
}

func newLogger(cfg config.LogConfig, service string, stdout io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = stdout
	pretty := cfg.Format == "pretty"
	if pretty {
		out = zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.RFC3339}
	}

	var sinkErr error
	if cfg.File != "" {
		if sinkErr = os.MkdirAll(filepath.Dir(cfg.File), 0755); sinkErr == nil {
			out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				Compress:   true,
			})
		}
	}

	ctx := zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", service)
	if pretty {
		ctx = ctx.Caller()
	}
	log := ctx.Logger()

	if sinkErr != nil {
		log.Warn().Err(sinkErr).Str("file", cfg.File).Msg("Log file disabled, writing to stdout only")
	}
	return log
}

// ParseLevel maps a level name onto a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
