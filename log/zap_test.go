/*
 * MIT License
 *
 * Copyright (c) 2022-2026 GoAkt Team
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extractMessage returns the message field of a single JSON log line
func extractMessage(bytes []byte) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(bytes, &m); err != nil {
		return "", err
	}
	if msg, ok := m["msg"].(string); ok {
		return msg, nil
	}
	return "", errors.New("message field not found")
}

// extractLevel returns the level field of a single JSON log line
func extractLevel(bytes []byte) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(bytes, &m); err != nil {
		return "", err
	}
	if lvl, ok := m["level"].(string); ok {
		return lvl, nil
	}
	return "", errors.New("level field not found")
}

func TestDebug(t *testing.T) {
	// create a bytes buffer that implements an io.Writer
	buffer := new(bytes.Buffer)
	// create an instance of Log
	logger := New(DebugLevel, buffer)
	// assert Debug log
	logger.Debug("test debug")
	expected := "test debug"
	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, expected, actual)

	lvl, err := extractLevel(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, "debug", lvl)
	require.Equal(t, DebugLevel, logger.LogLevel())
}

func TestInfo(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(InfoLevel, buffer)
	logger.Infof("hello %s", "world")
	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, "hello world", actual)

	lvl, err := extractLevel(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, "info", lvl)
	require.Equal(t, InfoLevel, logger.LogLevel())
}

func TestWarn(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(WarningLevel, buffer)
	logger.Warn("test warning")
	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, "test warning", actual)

	lvl, err := extractLevel(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, "warn", lvl)
	require.Equal(t, WarningLevel, logger.LogLevel())
}

func TestError(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(ErrorLevel, buffer)
	logger.Error("test error")
	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, "test error", actual)

	lvl, err := extractLevel(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, "error", lvl)
	require.Equal(t, ErrorLevel, logger.LogLevel())
}

func TestPanic(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(PanicLevel, buffer)
	assert.Panics(t, func() {
		logger.Panic("test panic")
	})
	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, "test panic", actual)
}

func TestLogOutput(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(InfoLevel, buffer)
	outputs := logger.LogOutput()
	require.Len(t, outputs, 1)
	assert.Equal(t, buffer, outputs[0])
}

func TestStdLogger(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(InfoLevel, buffer)
	stdLogger := logger.StdLogger()
	require.NotNil(t, stdLogger)
	stdLogger.Println("test std logger")
	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, "test std logger", actual)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARNING", WarningLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "FATAL", FatalLevel.String())
	assert.Equal(t, "PANIC", PanicLevel.String())
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "UNKNOWN", InvalidLevel.String())
}
