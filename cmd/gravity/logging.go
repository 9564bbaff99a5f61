package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// newLogger opens the session logger. The TUI owns the terminal, so logs
// go to --log-file or nowhere. The returned func closes the log file.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gravity",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// checkTerminal warns when the terminal cannot fit the playfield and the
// help line under it.
func checkTerminal(logger *log.Logger, width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Debug("could not read terminal size", "error", err)
		return
	}
	if w < width || h < height+1 {
		logger.Warn("terminal smaller than playfield", "width", w, "height", h, "need_width", width, "need_height", height+1)
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs at least %dx%d\n", w, h, width, height+1)
	}
}
