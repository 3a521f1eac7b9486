// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// nullLogger discards every log line; FromContext falls back to it so
// callers never have to nil-check.
var nullLogger = &hclogWrapper{log: hclog.NewNullLogger()}

//go:generate ${TOOLS_BIN}/stringer -type=Level
type Level int

const (
	ERROR Level = iota
	WARN
	INFO
	DEBUG
	TRACE
)

// LevelFromString maps a level name to its Level, defaulting to INFO for
// anything unrecognized.
func LevelFromString(level string) Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

func (l Level) hclogLevel() hclog.Level {
	switch l {
	case TRACE:
		return hclog.Trace
	case DEBUG:
		return hclog.Debug
	case INFO:
		return hclog.Info
	case WARN:
		return hclog.Warn
	case ERROR:
		return hclog.Error
	default:
		return hclog.Info
	}
}

// Logger is the leveled, named logger handed around the application.
type Logger interface {
	// WithName returns a new Logger instance with the specified name.
	WithName(name string) Logger

	// SetLevel updates the logger level.
	SetLevel(level Level)

	// Trace emit a message and key/value pairs at the TRACE level.
	Trace(msg string, args ...interface{})

	// Debug emit a message and key/value pairs at the DEBUG level.
	Debug(msg string, args ...interface{})

	// Info emit a message and key/value pairs at the INFO level.
	Info(msg string, args ...interface{})

	// Warn emit a message and key/value pairs at the WARN level.
	Warn(msg string, args ...interface{})

	// Error emit a message and key/value pairs at the ERROR level.
	Error(msg string, args ...interface{})
}

var _ Logger = &hclogWrapper{}

// hclogWrapper adapts an hclog.Logger to the Logger interface.
type hclogWrapper struct {
	log hclog.Logger
}

// NewLogger returns a JSON Logger writing to writer at INFO level.
func NewLogger(writer io.Writer) Logger {
	return &hclogWrapper{
		log: hclog.New(&hclog.LoggerOptions{
			JSONFormat: true,
			Output:     writer,
			TimeFn:     time.Now,
			Level:      INFO.hclogLevel(),
		}),
	}
}

func (l hclogWrapper) WithName(name string) Logger {
	return &hclogWrapper{
		log: l.log.ResetNamed(name),
	}
}

func (l hclogWrapper) SetLevel(level Level) {
	l.log.SetLevel(level.hclogLevel())
}

func (l hclogWrapper) Trace(msg string, args ...interface{}) {
	l.log.Trace(msg, args...)
}

func (l hclogWrapper) Debug(msg string, args ...interface{}) {
	l.log.Debug(msg, args...)
}

func (l hclogWrapper) Info(msg string, args ...interface{}) {
	l.log.Info(msg, args...)
}

func (l hclogWrapper) Warn(msg string, args ...interface{}) {
	l.log.Warn(msg, args...)
}

func (l hclogWrapper) Error(msg string, args ...interface{}) {
	l.log.Error(msg, args...)
}
