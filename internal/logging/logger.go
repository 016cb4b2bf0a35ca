/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/logging/logger.go
*/

// Package logging provides the server's small leveled logger: everything
// goes to stderr with a timestamped, level-tagged prefix.
package logging

import (
	"log"
	"os"
)

// Logger wraps one standard log.Logger per level.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
}

// New builds a Logger writing to stderr.
func New() *Logger {
	return &Logger{
		info:  log.New(os.Stderr, "[INFO]  ", log.Ldate|log.Ltime),
		warn:  log.New(os.Stderr, "[WARN]  ", log.Ldate|log.Ltime),
		error: log.New(os.Stderr, "[ERROR] ", log.Ldate|log.Ltime),
	}
}

// Info logs an informational message: connection lifecycle, fatal
// protocol errors.
func (l *Logger) Info(format string, v ...interface{}) { l.info.Printf(format, v...) }

// Warn logs a recoverable but noteworthy condition.
func (l *Logger) Warn(format string, v ...interface{}) { l.warn.Printf(format, v...) }

// Error logs a failure, such as a bind failure.
func (l *Logger) Error(format string, v ...interface{}) { l.error.Printf(format, v...) }
