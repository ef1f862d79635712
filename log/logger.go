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
	golog "log"
)

// Logger is the logging contract of the actor system. A Logger writes
// leveled lines to one or more io.Writer sinks; the actor system, every PID
// and the examples log through this interface only, so callers can plug in
// their own implementation.
type Logger interface {
	// Info logs a message at info level.
	Info(...any)
	// Infof logs a formatted message at info level.
	Infof(string, ...any)
	// Warn logs a message at warning level.
	Warn(...any)
	// Warnf logs a formatted message at warning level.
	Warnf(string, ...any)
	// Error logs a message at error level.
	Error(...any)
	// Errorf logs a formatted message at error level.
	Errorf(string, ...any)
	// Fatal logs a message at fatal level followed by os.Exit(1).
	Fatal(...any)
	// Fatalf logs a formatted message at fatal level followed by os.Exit(1).
	Fatalf(string, ...any)
	// Panic logs a message at panic level and then panics.
	Panic(...any)
	// Panicf logs a formatted message at panic level and then panics.
	Panicf(string, ...any)
	// Debug logs a message at debug level.
	Debug(...any)
	// Debugf logs a formatted message at debug level.
	Debugf(string, ...any)
	// LogLevel returns the level the logger emits at.
	LogLevel() Level
	// LogOutput returns the sinks the logger writes to.
	LogOutput() []io.Writer
	// StdLogger adapts the logger to the standard library log.Logger.
	StdLogger() *golog.Logger
}
