package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// OpenLog returns the logger selected by LogPath. With no path the logger
// writes to fallback; a nil fallback discards output. The returned function
// closes the log file, if any.
func (c Config) OpenLog(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	if c.LogPath == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		return log.New(fallback, prefix, log.LstdFlags), noop, nil
	}

	if dir := filepath.Dir(c.LogPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, noop, fmt.Errorf("create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log file: %w", err)
	}

	flags := log.LstdFlags
	if c.Debug {
		flags |= log.Lmicroseconds | log.Lshortfile
	}
	return log.New(f, prefix, flags), f.Close, nil
}
