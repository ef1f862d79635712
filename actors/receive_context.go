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
	"sync"

	"github.com/tochemey/conduct/log"
)

// pool holds a pool of ReceiveContext
var pool = sync.Pool{
	New: func() any {
		return new(ReceiveContext)
	},
}

// contextFromPool retrieves a receive context from the pool
func contextFromPool() *ReceiveContext {
	return pool.Get().(*ReceiveContext)
}

// releaseContext sends the receive context back to the pool
func releaseContext(received *ReceiveContext) {
	received.reset()
	pool.Put(received)
}

// ReceiveContext is the context handed to the matched action when the actor
// processes a message. It carries the message itself and is the only place
// from which behavior switching is legal: Become, BecomeStacked and UnBecome
// take effect when the action returns, before the next message is dequeued.
type ReceiveContext struct {
	ctx     context.Context
	message any
	sender  *PID
	self    *PID
	err     error
}

// build sets the various fields of the receive context
func (rctx *ReceiveContext) build(ctx context.Context, sender, self *PID, message any) *ReceiveContext {
	rctx.ctx = ctx
	rctx.sender = sender
	rctx.self = self
	rctx.message = message
	return rctx
}

// reset resets the receive context for reuse
func (rctx *ReceiveContext) reset() {
	rctx.ctx = nil
	rctx.message = nil
	rctx.sender = nil
	rctx.self = nil
	rctx.err = nil
}

// Context represents the context attached to the message
func (rctx *ReceiveContext) Context() context.Context {
	return rctx.ctx
}

// Message is the actual message sent
func (rctx *ReceiveContext) Message() any {
	return rctx.message
}

// Sender of the message. NoSender is returned when the message was sent from
// outside the actor system.
func (rctx *ReceiveContext) Sender() *PID {
	return rctx.sender
}

// Self returns the receiver PID of the message
func (rctx *ReceiveContext) Self() *PID {
	return rctx.self
}

// Err is used instead of panicking within a message handler. The runtime
// reports the error as an action fault once the handler returns.
func (rctx *ReceiveContext) Err(err error) {
	rctx.err = err
}

// Logger returns the logger of the actor processing the message
func (rctx *ReceiveContext) Logger() log.Logger {
	return rctx.self.Logger()
}

// Become switches the current behavior of the actor to the given handler set,
// discarding the previous one. The current message is still processed by the
// behavior that matched it; subsequent messages are processed by the new one.
// The stack depth is unchanged and the discarded handler set is unreachable.
func (rctx *ReceiveContext) Become(behavior *HandlerSet) {
	rctx.self.setBehavior(behavior)
}

// BecomeStacked pushes the given handler set on top of the current one.
// The previous behavior is preserved beneath and restored by UnBecome.
func (rctx *ReceiveContext) BecomeStacked(behavior *HandlerSet) {
	rctx.self.setBehaviorStacked(behavior)
}

// UnBecome reverts the actor to the behavior active before the last
// BecomeStacked call. It is safe to call unconditionally: when only the
// initial behavior remains it is a deliberate no-op, an actor can never pop
// its initial behavior.
func (rctx *ReceiveContext) UnBecome() {
	rctx.self.unsetBehaviorStacked()
}

// Tell sends an asynchronous message to another PID. The receiving actor
// sees the current actor as the sender.
func (rctx *ReceiveContext) Tell(to *PID, message any) {
	ctx := context.WithoutCancel(rctx.ctx)
	if err := rctx.self.Tell(ctx, to, message); err != nil {
		rctx.Err(err)
	}
}

// Forward sends the current message to the given PID, keeping the original
// sender.
func (rctx *ReceiveContext) Forward(to *PID) {
	ctx := context.WithoutCancel(rctx.ctx)
	receiveContext := contextFromPool().build(ctx, rctx.sender, to, rctx.message)
	if err := to.doReceive(receiveContext); err != nil {
		rctx.Err(err)
	}
}
