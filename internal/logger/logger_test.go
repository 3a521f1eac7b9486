// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	logger := NewLogger(buffer)

	logger.SetLevel(TRACE)
	namedLogger := logger.WithName("test_logger")
	namedLogger.Info("emitted at INFO")
	logger.Trace("emitted at TRACE")
	logger.SetLevel(DEBUG)
	logger.Debug("emitted at DEBUG")
	namedLogger.Warn("emitted at WARN")

	logger.SetLevel(ERROR)
	namedLogger.Warn("silenced at WARN")
	logger.SetLevel(WARN)
	logger.Error("emitted at ERROR")
	logger.Debug("silenced at DEBUG")

	logger.SetLevel(999) // unknown levels fall back to INFO
	logger.Info("emitted at INFO after fallback")
	namedLogger.Debug("silenced at DEBUG after fallback")

	lines := strings.Split(buffer.String(), "\n")
	assert.Len(t, lines, 7) // 6 log lines plus 1 trailing empty line
	assert.Contains(t, lines[0], "test_logger")
}

func TestLevelStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TRACE", TRACE.String())
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "Level(999)", Level(999).String())

	assert.Equal(t, TRACE, LevelFromString("trace"))
	assert.Equal(t, DEBUG, LevelFromString("DEBUG"))
	assert.Equal(t, INFO, LevelFromString("INFO"))
	assert.Equal(t, WARN, LevelFromString("WARN"))
	assert.Equal(t, ERROR, LevelFromString("ERROR"))
	assert.Equal(t, INFO, LevelFromString("INVALID"))
}
