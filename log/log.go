package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const logFileName = "mdtable.log"

// Package-level loggers. They write to stderr until Initialize
// redirects them to the log file; TUI code must never write to
// stdout/stderr directly, so everything funnels through these.
var (
	InfoLog    = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(os.Stderr, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog   = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
)

var logFile *os.File

// Initialize sets up file-backed logging under the application's
// config directory. Call Close before exiting.
func Initialize() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(homeDir, ".mdtable")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}

	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return
	}

	logFile = f
	InfoLog.SetOutput(f)
	WarningLog.SetOutput(f)
	ErrorLog.SetOutput(f)
}

// Close flushes and closes the log file, printing its path when
// anything was written during this run.
func Close() {
	if logFile == nil {
		return
	}
	if stat, err := logFile.Stat(); err == nil && stat.Size() > 0 {
		fmt.Printf("log file: %s\n", logFile.Name())
	}
	_ = logFile.Close()
	logFile = nil
}

// Path returns the location of the active log file, or "" when file
// logging is not initialized.
func Path() string {
	if logFile == nil {
		return ""
	}
	return logFile.Name()
}
