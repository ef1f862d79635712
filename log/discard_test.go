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
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger

	// none of these should produce any output
	logger.Debug("discarded")
	logger.Debugf("discarded %d", 1)
	logger.Info("discarded")
	logger.Infof("discarded %d", 1)
	logger.Warn("discarded")
	logger.Warnf("discarded %d", 1)
	logger.Error("discarded")
	logger.Errorf("discarded %d", 1)

	assert.Panics(t, func() {
		logger.Panic("boom")
	})
	assert.Panics(t, func() {
		logger.Panicf("boom %d", 1)
	})

	assert.Equal(t, InvalidLevel, logger.LogLevel())

	outputs := logger.LogOutput()
	require.Len(t, outputs, 1)
	assert.Equal(t, io.Discard, outputs[0])
	require.NotNil(t, logger.StdLogger())
}
