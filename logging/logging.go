// Package logging sets up the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs a text handler at the given level, writing to stderr or,
// when file is non-empty, to a rotating log file. The returned cleanup
// closes the file and should run on shutdown.
func Setup(level, file string) (func() error, error) {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	cleanup := func() error { return nil }

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = lj
		cleanup = lj.Close
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(h))
	return cleanup, nil
}
