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

import "context"

// Context provides an environment for an actor during its lifecycle hooks.
// It wraps the standard context.Context and grants access to the actor name
// and the ActorSystem managing the actor.
type Context struct {
	ctx         context.Context
	actorName   string
	actorSystem ActorSystem
}

// newContext creates and returns a new Context instance
func newContext(ctx context.Context, actorName string, actorSystem ActorSystem) *Context {
	return &Context{
		ctx:         ctx,
		actorName:   actorName,
		actorSystem: actorSystem,
	}
}

// Context returns the underlying context. It carries deadlines, cancellation
// signals, and request-scoped values.
func (x *Context) Context() context.Context {
	return x.ctx
}

// ActorName returns the name of the actor associated with this Context
func (x *Context) ActorName() string {
	return x.actorName
}

// ActorSystem returns the ActorSystem that manages the actor
func (x *Context) ActorSystem() ActorSystem {
	return x.actorSystem
}
