// Package iologger provides slog-based logging for pipeline runs.
//
// Unlike a process-global setup, the logger is constructed once per run and
// handed to the orchestrator together with a close function, so the log
// file handle is scoped to the run and flushed on exit.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/herbdata/herbario/pkg/config"
)

// timestamp layout of error log file names, errors/<timestamp>.log
const logNameLayout = "20060102_150405"

// New creates a logger according to the configuration. With the "file"
// destination entries go to a dated file in errorsDir, opened in append
// mode. The returned close function releases the file handle and is a
// no-op for terminal destinations.
func New(
	errorsDir string,
	cfg config.LogConfig,
) (*slog.Logger, func() error, error) {
	var writer io.Writer
	closeFn := func() error { return nil }

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		name := time.Now().Format(logNameLayout) + ".log"
		logPath := filepath.Join(errorsDir, name)
		file, err := os.OpenFile(
			logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644,
		)
		if err != nil {
			return nil, nil, CreateLogFileError(logPath, err)
		}
		writer = file
		closeFn = file.Close
	default:
		writer = os.Stderr
	}

	level := parseLevel(cfg.Level)
	// entries carry their origin file and line
	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(writer, handlerOpts)
	case "text":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	return slog.New(handler), closeFn, nil
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
