package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

var (
	appLog  = log.New(io.Discard)
	logFile *os.File
)

// openLog configures the process logger. The terminal belongs to the game,
// so logs go to a file or nowhere.
func openLog(path, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	if path == "" {
		appLog = log.New(io.Discard)
		return appLog, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	appLog = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           lvl,
	})
	return appLog, nil
}

// closeLog flushes and closes the log file, if one was opened.
func closeLog() {
	if logFile == nil {
		return
	}
	//nolint:errcheck // Best-effort close on exit
	logFile.Close()
	logFile = nil
}
