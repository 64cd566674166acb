// Package log provides the process-wide loggers used by every package.
// Until Initialize is called the loggers discard their output, so the
// breakpoint engine can be used as a library without any setup.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "breakpoints.log")

var globalLogFile *os.File

// Initialize opens the log file and points the loggers at it. headless marks
// lines written by the non-interactive watch command.
func Initialize(headless bool) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}

	prefix := "%s"
	if headless {
		prefix = "[WATCH] %s"
	}

	InfoLog = log.New(f, fmt.Sprintf(prefix, "INFO:"), log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, fmt.Sprintf(prefix, "WARNING:"), log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, fmt.Sprintf(prefix, "ERROR:"), log.Ldate|log.Ltime|log.Lshortfile)

	globalLogFile = f
}

// Close flushes the log file and tells the user where it went.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	fmt.Println("wrote logs to " + logFileName)
}
