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

// Actor is implemented by any user who wants to create an actor.
// Any implementation must be immutable, which means all fields must be
// private (unexported). Use the PreStart hook to set initial values.
type Actor interface {
	// PreStart is invoked before the actor starts processing messages and
	// again after a restart. Use it to set up resources or to request
	// external data, for instance asking an authenticator for a check; the
	// response arrives later as a regular mailbox message. When PreStart
	// keeps failing after the configured retries the actor is not started.
	PreStart(ctx *Context) error
	// InitialBehavior returns the handler set governing the actor when it
	// starts. It is pushed as the single element of the behavior stack
	// before the first message is processed and restored on restart.
	InitialBehavior() *HandlerSet
	// PostStop is executed when the actor is shutting down, after the last
	// processed message. Use it to free resources.
	PostStop(ctx *Context) error
}
