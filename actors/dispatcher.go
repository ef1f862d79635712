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

// Outcome is the result of dispatching a message against a handler set
type Outcome int

const (
	// Handled means a registration matched the message and its action ran
	Handled Outcome = iota
	// Unhandled means no registration matched the message; the runtime
	// decides what to do with it (dead letter, log or drop)
	Unhandled
)

// String returns the text representation of the outcome
func (o Outcome) String() string {
	if o == Handled {
		return "Handled"
	}
	return "Unhandled"
}

// dispatch resolves the given message against the handler set.
//
// Registrations are scanned in declaration order; the first one whose message
// type matches and whose guard accepts the message (an absent guard always
// accepts) has its action invoked synchronously. Declaration order is the
// only disambiguation mechanism when several registrations share a message
// type. dispatch itself is stateless; any side effect belongs to the single
// invoked action.
func dispatch(set *HandlerSet, received *ReceiveContext) Outcome {
	message := received.Message()
	messageType := reflect.TypeOf(message)
	for i := range set.registrations {
		registration := &set.registrations[i]
		if !registration.matches(messageType) {
			continue
		}
		if registration.guard != nil && !registration.guard(message) {
			continue
		}
		registration.action(received)
		return Handled
	}
	return Unhandled
}
