package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds the root logger from LOG_LEVEL (default info). Output goes
// to w unless LOG_FILE names a file, which is appended to instead. The
// returned closer releases that file.
func NewLogger(prefix string, w io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	var closer io.Closer = nopCloser{}
	if path := GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open LOG_FILE: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
