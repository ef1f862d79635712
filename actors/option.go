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

package actors

import (
	"time"

	"github.com/tochemey/conduct/log"
)

// Option is the interface that applies a configuration option to the
// actor system.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(sys *actorSystem)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*actorSystem)

// Apply applies the options to the actor system
func (f OptionFunc) Apply(sys *actorSystem) {
	f(sys)
}

// WithLogger sets the actor system custom logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(sys *actorSystem) {
		sys.logger = logger
	})
}

// WithActorInitMaxRetries sets the number of times to retry an actor
// initialization before declaring it failed. It applies to every actor
// spawned on the system unless overridden at spawn time.
func WithActorInitMaxRetries(max int) Option {
	return OptionFunc(func(sys *actorSystem) {
		sys.actorInitMaxRetries = max
	})
}

// WithActorInitTimeout sets how long to wait for a successful actor
// initialization. It applies to every actor spawned on the system unless
// overridden at spawn time.
func WithActorInitTimeout(timeout time.Duration) Option {
	return OptionFunc(func(sys *actorSystem) {
		sys.actorInitTimeout = timeout
	})
}

// WithShutdownTimeout sets the deadline applied when stopping the system
func WithShutdownTimeout(timeout time.Duration) Option {
	return OptionFunc(func(sys *actorSystem) {
		sys.shutdownTimeout = timeout
	})
}

// WithUnhandledPolicy sets the system-wide policy for messages the active
// behavior of an actor does not handle. It applies to every actor spawned
// on the system unless overridden at spawn time.
func WithUnhandledPolicy(policy UnhandledPolicy) Option {
	return OptionFunc(func(sys *actorSystem) {
		sys.unhandledPolicy = policy
	})
}
