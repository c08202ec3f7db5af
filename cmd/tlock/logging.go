package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "tlock.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logDir overrides the log directory; empty means <user cache dir>/tlock/logs
var logDir string

func logDirectory() (string, error) {
	if logDir != "" {
		return logDir, nil
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cache, "tlock", "logs"), nil
}

// setupLogging points the standard logger at the log file, rotating it past
// maxLogSize. Logging is discarded when disabled or when the file cannot be
// opened; stdout and stderr belong to the screen.
func setupLogging(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}

	dir, err := logDirectory()
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("tlock-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
