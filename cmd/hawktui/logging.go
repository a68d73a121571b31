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
	logFileName = "hawktui.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logDir is relative to the working directory
var logDir = "logs"

// setupLogging routes the standard logger to the debug log file, or discards it
// The terminal is owned by the UI, so nothing is ever written to stdout or stderr
// Returns the open log file, nil when debug is off or the file cannot be opened
func setupLogging(debug bool) *os.File {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("hawktui-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.Printf("hawktui: logging started")
	return f
}
