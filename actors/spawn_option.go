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

import "time"

// spawnConfig defines the settings of a single actor. The zero values are
// filled in from the actor system defaults before the options run.
type spawnConfig struct {
	// mailbox defines the mailbox of the actor
	mailbox Mailbox
	// initMaxRetries defines the number of times to retry the actor
	// initialization
	initMaxRetries int
	// initTimeout defines the deadline for a successful initialization
	initTimeout time.Duration
	// unhandledPolicy defines what to do with unhandled messages
	unhandledPolicy UnhandledPolicy
}

// SpawnOption is the interface that applies a configuration option to a
// single actor at spawn time.
type SpawnOption interface {
	// Apply sets the Option value of a config.
	Apply(config *spawnConfig)
}

var _ SpawnOption = spawnOption(nil)

// spawnOption implements the SpawnOption interface.
type spawnOption func(config *spawnConfig)

// Apply sets the Option value of a config.
func (f spawnOption) Apply(c *spawnConfig) {
	f(c)
}

// WithMailbox sets the mailbox to use when starting the given actor. Care
// should be taken when using a custom mailbox to understand its behavior
// and constraints.
func WithMailbox(mailbox Mailbox) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.mailbox = mailbox
	})
}

// WithInitMaxRetries overrides the system-wide number of initialization
// retries for the given actor
func WithInitMaxRetries(max int) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.initMaxRetries = max
	})
}

// WithInitTimeout overrides the system-wide initialization deadline for the
// given actor
func WithInitTimeout(timeout time.Duration) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.initTimeout = timeout
	})
}

// WithUnhandledMessagePolicy overrides the system-wide unhandled-message
// policy for the given actor
func WithUnhandledMessagePolicy(policy UnhandledPolicy) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.unhandledPolicy = policy
	})
}

// newSpawnConfig creates a spawn config seeded with the system defaults
func newSpawnConfig(sys *actorSystem, opts ...SpawnOption) *spawnConfig {
	config := &spawnConfig{
		mailbox:         NewDefaultMailbox(),
		initMaxRetries:  sys.actorInitMaxRetries,
		initTimeout:     sys.actorInitTimeout,
		unhandledPolicy: sys.unhandledPolicy,
	}
	for _, opt := range opts {
		opt.Apply(config)
	}
	return config
}
