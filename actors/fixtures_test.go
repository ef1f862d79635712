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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/tochemey/conduct/log"
)

// test messages

type login struct {
	password string
}

type query struct {
	statement string
}

type logout struct{}

type metric struct {
	value int64
}

type togglePause struct{}

type boom struct{}

type ping struct{}

// MockSession models a connection that starts unauthenticated. A successful
// login replaces the active behavior with the authenticated one; logout
// replaces it back. The stack depth stays at 1 throughout.
type MockSession struct {
	password string

	loginAttempts *atomic.Int64
	queries       *atomic.Int64
}

var _ Actor = (*MockSession)(nil)

func NewMockSession(password string) *MockSession {
	return &MockSession{
		password:      password,
		loginAttempts: atomic.NewInt64(0),
		queries:       atomic.NewInt64(0),
	}
}

func (x *MockSession) PreStart(*Context) error {
	return nil
}

func (x *MockSession) PostStop(*Context) error {
	return nil
}

func (x *MockSession) InitialBehavior() *HandlerSet {
	return x.authenticating()
}

func (x *MockSession) authenticating() *HandlerSet {
	return NewHandlerSet("authenticating",
		On[*login](func(ctx *ReceiveContext, message *login) {
			x.loginAttempts.Inc()
			if message.password == x.password {
				ctx.Become(x.authenticated())
			}
		}),
	)
}

func (x *MockSession) authenticated() *HandlerSet {
	return NewHandlerSet("authenticated",
		On[*query](func(ctx *ReceiveContext, message *query) {
			x.queries.Inc()
		}),
		On[*logout](func(ctx *ReceiveContext, message *logout) {
			ctx.Become(x.authenticating())
		}),
	)
}

// MockChart accumulates metric samples and can be paused. Pausing stacks a
// behavior on top of the charting one; resuming pops it, so any state the
// charting behavior accumulated is preserved. The paused behavior still
// handles samples, recording them as zero.
type MockChart struct {
	total         *atomic.Int64
	pausedSamples *atomic.Int64
}

var _ Actor = (*MockChart)(nil)

func NewMockChart() *MockChart {
	return &MockChart{
		total:         atomic.NewInt64(0),
		pausedSamples: atomic.NewInt64(0),
	}
}

func (x *MockChart) PreStart(*Context) error {
	return nil
}

func (x *MockChart) PostStop(*Context) error {
	return nil
}

func (x *MockChart) InitialBehavior() *HandlerSet {
	return NewHandlerSet("charting",
		On[*metric](func(ctx *ReceiveContext, message *metric) {
			x.total.Add(message.value)
		}),
		On[*togglePause](func(ctx *ReceiveContext, message *togglePause) {
			ctx.BecomeStacked(x.paused())
		}),
	)
}

func (x *MockChart) paused() *HandlerSet {
	return NewHandlerSet("paused",
		On[*metric](func(ctx *ReceiveContext, message *metric) {
			// record the sample as zero while paused
			x.pausedSamples.Inc()
		}),
		On[*togglePause](func(ctx *ReceiveContext, message *togglePause) {
			ctx.UnBecome()
		}),
	)
}

// MockStubborn calls UnBecome from its initial behavior, which must be a
// no-op since the initial behavior is never popped
type MockStubborn struct {
	pings *atomic.Int64
}

var _ Actor = (*MockStubborn)(nil)

func NewMockStubborn() *MockStubborn {
	return &MockStubborn{pings: atomic.NewInt64(0)}
}

func (x *MockStubborn) PreStart(*Context) error {
	return nil
}

func (x *MockStubborn) PostStop(*Context) error {
	return nil
}

func (x *MockStubborn) InitialBehavior() *HandlerSet {
	return NewHandlerSet("default",
		On[*logout](func(ctx *ReceiveContext, message *logout) {
			ctx.UnBecome()
		}),
		On[*ping](func(ctx *ReceiveContext, message *ping) {
			x.pings.Inc()
		}),
	)
}

// MockPanicker panics on boom and counts everything else
type MockPanicker struct {
	received *atomic.Int64
}

var _ Actor = (*MockPanicker)(nil)

func NewMockPanicker() *MockPanicker {
	return &MockPanicker{received: atomic.NewInt64(0)}
}

func (x *MockPanicker) PreStart(*Context) error {
	return nil
}

func (x *MockPanicker) PostStop(*Context) error {
	return nil
}

func (x *MockPanicker) InitialBehavior() *HandlerSet {
	return NewHandlerSet("default",
		On[*boom](func(ctx *ReceiveContext, message *boom) {
			panic("boom")
		}),
		On[*ping](func(ctx *ReceiveContext, message *ping) {
			x.received.Inc()
		}),
	)
}

// MockRestarted counts PreStart invocations so tests can observe restarts
type MockRestarted struct {
	counter *atomic.Int64
}

var _ Actor = (*MockRestarted)(nil)

func NewMockRestarted() *MockRestarted {
	return &MockRestarted{counter: atomic.NewInt64(0)}
}

func (x *MockRestarted) PreStart(*Context) error {
	x.counter.Inc()
	return nil
}

func (x *MockRestarted) PostStop(*Context) error {
	return nil
}

func (x *MockRestarted) InitialBehavior() *HandlerSet {
	return NewHandlerSet("default",
		On[*togglePause](func(ctx *ReceiveContext, message *togglePause) {
			ctx.BecomeStacked(NewHandlerSet("stacked",
				On[*ping](func(ctx *ReceiveContext, message *ping) {}),
			))
		}),
	)
}

// MockFailingPreStart always fails to initialize
type MockFailingPreStart struct {
	attempts *atomic.Int64
}

var _ Actor = (*MockFailingPreStart)(nil)

func NewMockFailingPreStart() *MockFailingPreStart {
	return &MockFailingPreStart{attempts: atomic.NewInt64(0)}
}

func (x *MockFailingPreStart) PreStart(*Context) error {
	x.attempts.Inc()
	return errors.New("failed")
}

func (x *MockFailingPreStart) PostStop(*Context) error {
	return nil
}

func (x *MockFailingPreStart) InitialBehavior() *HandlerSet {
	return NewHandlerSet("default",
		On[*ping](func(ctx *ReceiveContext, message *ping) {}),
	)
}

// MockNoBehavior returns a nil initial behavior
type MockNoBehavior struct{}

var _ Actor = (*MockNoBehavior)(nil)

func (x *MockNoBehavior) PreStart(*Context) error {
	return nil
}

func (x *MockNoBehavior) PostStop(*Context) error {
	return nil
}

func (x *MockNoBehavior) InitialBehavior() *HandlerSet {
	return nil
}

// MockForwarder forwards every ping to its target, preserving the original
// sender
type MockForwarder struct {
	target *PID
}

var _ Actor = (*MockForwarder)(nil)

func NewMockForwarder(target *PID) *MockForwarder {
	return &MockForwarder{target: target}
}

func (x *MockForwarder) PreStart(*Context) error {
	return nil
}

func (x *MockForwarder) PostStop(*Context) error {
	return nil
}

func (x *MockForwarder) InitialBehavior() *HandlerSet {
	return NewHandlerSet("default",
		On[*ping](func(ctx *ReceiveContext, message *ping) {
			ctx.Forward(x.target)
		}),
	)
}

// MockRelay re-sends every ping to its target with itself as the sender
type MockRelay struct {
	target *PID
}

var _ Actor = (*MockRelay)(nil)

func NewMockRelay(target *PID) *MockRelay {
	return &MockRelay{target: target}
}

func (x *MockRelay) PreStart(*Context) error {
	return nil
}

func (x *MockRelay) PostStop(*Context) error {
	return nil
}

func (x *MockRelay) InitialBehavior() *HandlerSet {
	return NewHandlerSet("default",
		On[*ping](func(ctx *ReceiveContext, message *ping) {
			ctx.Tell(x.target, message)
		}),
	)
}

// MockSenderTracker records the name of the sender of the last ping
type MockSenderTracker struct {
	lastSender *atomic.String
}

var _ Actor = (*MockSenderTracker)(nil)

func NewMockSenderTracker() *MockSenderTracker {
	return &MockSenderTracker{lastSender: atomic.NewString("")}
}

func (x *MockSenderTracker) PreStart(*Context) error {
	return nil
}

func (x *MockSenderTracker) PostStop(*Context) error {
	return nil
}

func (x *MockSenderTracker) InitialBehavior() *HandlerSet {
	return NewHandlerSet("default",
		On[*ping](func(ctx *ReceiveContext, message *ping) {
			if ctx.Sender() != NoSender {
				x.lastSender.Store(ctx.Sender().Name())
			}
		}),
	)
}

// testSystem creates and starts a system with a discard logger
func testSystem(t *testing.T) ActorSystem {
	t.Helper()
	system, err := NewActorSystem("testSys", WithLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(context.TODO()))
	return system
}
