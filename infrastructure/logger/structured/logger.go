// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports level filtering, JSON or text output and rotated log files

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/DTI-Technologies/shades-webapp/pkg/config"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
}

// NewLogger creates a logger writing to out at the given level and format
func NewLogger(level, format string, out io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(out)

	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		l.SetLevel(parsed)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{entry: l}
}

// NewFromConfig creates a logger from configuration.
// When cfg.File is set, output goes to a rotated file instead of stdout.
func NewFromConfig(cfg config.LogConfig) *Logger {
	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	return NewLogger(cfg.Level, cfg.Format, out)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}
