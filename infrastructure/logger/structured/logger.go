// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports level filtering, text or JSON output and rotated log files

package structured

import (
	"fmt"
	"io"
	"os"

	"catcare-web/pkg/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger implements the Logger interface on top of a logrus logger
type Logger struct {
	entry *logrus.Logger
}

// New creates a logger from logging configuration. When cfg.File is set,
// output goes to a size-rotated file instead of stdout.
func New(cfg config.LogConfig) (*Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	return NewWithWriter(out, level, cfg.Format), nil
}

// NewWithWriter creates a logger writing to out at the given level
func NewWithWriter(out io.Writer, level logrus.Level, format string) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{entry: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.with(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.with(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.with(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.with(fields).Error(msg)
}

func (l *Logger) with(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.entry)
	}
	return l.entry.WithFields(logrus.Fields(fields))
}
