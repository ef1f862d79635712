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

import "reflect"

// Registration binds a message type and an optional guard predicate to an
// action. Registrations are built with On and When and assembled into a
// HandlerSet. Declaration order is significant: when several registrations
// share a message type, the first one whose guard accepts the message wins.
type Registration struct {
	messageType reflect.Type
	guard       func(message any) bool
	action      func(ctx *ReceiveContext)
}

// On creates a Registration matching every message of type T.
// T can be a concrete type or an interface; an interface registration matches
// any message whose type implements it.
func On[T any](action func(ctx *ReceiveContext, message T)) Registration {
	return Registration{
		messageType: reflect.TypeOf((*T)(nil)).Elem(),
		action: func(ctx *ReceiveContext) {
			action(ctx, ctx.Message().(T))
		},
	}
}

// When creates a Registration matching messages of type T that the guard
// accepts. The guard must be a pure function of the message: it may run
// before the action runs and must not mutate actor state.
func When[T any](guard func(message T) bool, action func(ctx *ReceiveContext, message T)) Registration {
	registration := On(action)
	registration.guard = func(message any) bool {
		typed, ok := message.(T)
		return ok && guard(typed)
	}
	return registration
}

// matches reports whether the registration accepts the given message type
func (r Registration) matches(messageType reflect.Type) bool {
	if r.messageType == messageType {
		return true
	}
	return r.messageType.Kind() == reflect.Interface && messageType.Implements(r.messageType)
}

// HandlerSet is a named, ordered and immutable collection of Registrations.
// A HandlerSet is built once and never mutated afterwards; changing the way
// an actor handles messages means building a new HandlerSet and switching to
// it with Become or BecomeStacked. No duplicate-type validation is performed.
type HandlerSet struct {
	name          string
	registrations []Registration
}

// NewHandlerSet creates a HandlerSet out of the given registrations.
// The name identifies the behavior in diagnostics, dead letters and tests.
func NewHandlerSet(name string, registrations ...Registration) *HandlerSet {
	set := &HandlerSet{
		name:          name,
		registrations: make([]Registration, len(registrations)),
	}
	copy(set.registrations, registrations)
	return set
}

// Name returns the handler set name
func (set *HandlerSet) Name() string {
	return set.name
}

// Len returns the number of registrations in the handler set
func (set *HandlerSet) Len() int {
	return len(set.registrations)
}
