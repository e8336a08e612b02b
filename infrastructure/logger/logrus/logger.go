// ABOUTME: Logger implementation on logrus with structured fields and level control
// ABOUTME: Text output for interactive runs, JSON when requested for collection

// Package logrus adapts the logrus library to the pipeline logger contract.
package logrus

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger implements the Logger interface using logrus.
type Logger struct {
	log *logrus.Logger
}

// New creates a logger at the given level ("debug", "info", "warn",
// "error"); unknown levels fall back to info. Setting jsonOutput emits one
// JSON object per line instead of the text formatter.
func New(level string, jsonOutput bool) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if jsonOutput {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{log: log}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
