package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	text   *log.Logger
	json   *slog.Logger
	level  string
	silent bool
}

// New creates a text Logger writing to stdout.
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level, "text")
}

// NewWithWriter creates a Logger writing to w. format is "text" (default) or
// "json"; json emits one slog record per line.
func NewWithWriter(w io.Writer, level, format string) Logger {
	l := &implLogger{level: strings.ToLower(level)}
	if strings.EqualFold(format, "json") {
		l.json = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		l.text = log.New(w, "", log.LstdFlags)
	}
	return l
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &implLogger{silent: true}
}

func (l *implLogger) shouldLog(level string) bool {
	if l.silent {
		return false
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) emit(ctx context.Context, level string, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}
	if l.json != nil {
		l.json.Log(ctx, slogLevel(level), fmt.Sprintf(msg, args...))
		return
	}
	l.text.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, "debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, "info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, "warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, "error", msg, args)
}
