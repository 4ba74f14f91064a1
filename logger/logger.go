package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Nil until InitLogger runs; library code
// should obtain a logger through Get, which falls back to a default
// instance so packages work without explicit initialization.
var Log *logrus.Logger

var (
	fallback     *logrus.Logger
	fallbackOnce sync.Once
)

// PlainFormatter renders "[TIME] [LEVEL] [FILE:LINE] MSG" lines.
type PlainFormatter struct{}

// Format implements logrus.Formatter.
func (f *PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var fileLine string
	if entry.HasCaller() {
		fileLine = fmt.Sprintf("%s:%d", filepath.Base(entry.Caller.File), entry.Caller.Line)
	}

	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}

	timeStr := entry.Time.Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf("[%s] [%s] [%s] %s\n", timeStr, level, fileLine, entry.Message)
	return []byte(msg), nil
}

// InitLogger configures the global logger with a level and an optional
// log file (written in addition to stdout).
func InitLogger(levelStr string, filePath string) error {
	Log = logrus.New()
	Log.SetReportCaller(true)
	Log.SetFormatter(&PlainFormatter{})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	writers := []io.Writer{os.Stdout}
	if filePath != "" {
		logDir := filepath.Dir(filePath)
		if logDir != "." {
			if err := os.MkdirAll(logDir, 0o755); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
		}

		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return err
		}
		writers = append(writers, file)
	}
	Log.SetOutput(io.MultiWriter(writers...))

	return nil
}

// Get returns the global logger, or a lazily-built default when
// InitLogger has not been called.
func Get() *logrus.Logger {
	if Log != nil {
		return Log
	}
	fallbackOnce.Do(func() {
		fallback = logrus.New()
		fallback.SetFormatter(&PlainFormatter{})
	})
	return fallback
}
