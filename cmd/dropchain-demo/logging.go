package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	dlog "github.com/lixenwraith/dropchain/log"
)

// maxLogSize triggers rotation of an existing log file on startup
const maxLogSize = 10 * 1024 * 1024

// setupLogging configures the base logger
// Without debug all output is discarded since the terminal UI owns stdout and stderr
// With debug, entries go to path, rotating an oversized previous file aside
func setupLogging(debug bool, path, level string) (*os.File, error) {
	if !debug {
		dlog.Configure(dlog.Config{Output: io.Discard, Level: level})
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, rotatedName(path, time.Now())); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	dlog.Configure(dlog.Config{Output: f, Level: level})
	return f, nil
}

// rotatedName inserts a timestamp before the extension: logs/x.log -> logs/x-20060102-150405.log
func rotatedName(path string, now time.Time) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + now.Format("20060102-150405") + ext
}
