package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a logger that adds args to every record, e.g. the
	// component a grid stage belongs to.
	With(args ...any) Logger
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

var (
	DefaultLogger = New(Options{os.Stderr, DefaultLevel, TypeText})

	// Discard drops every record. Grids use it when no logger is configured.
	Discard = New(Options{io.Discard, ErrorLevel, TypeText})
)

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	buffer := opts.Buffer
	if buffer == nil {
		buffer = os.Stderr
	}
	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		Logger: slog.New(handler),
	}
}

func (l *logger) With(args ...any) Logger {
	return &logger{Logger: l.Logger.With(args...)}
}
