package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// NewLogger builds the process logger from the config. The returned closer
// releases the log file, it is a no-op when logging to stderr.
func NewLogger(config Config) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[NewLogger] unknown log level: %+v", config.LogLevel)
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if config.LogFile != "" {
		if err = os.MkdirAll(filepath.Dir(config.LogFile), 0o755); err != nil {
			return nil, nil, errors.Wrapf(err, "[NewLogger] failed to create log directory for: %+v", config.LogFile)
		}
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "[NewLogger] failed to open log file: %+v", config.LogFile)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "gol",
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
