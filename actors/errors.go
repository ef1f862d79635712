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

import "errors"

var (
	// ErrInvalidActorSystemName is returned when the actor system name contains
	// invalid characters. A valid name must consist of only alphanumeric
	// characters ([a-zA-Z0-9]), with optional hyphens or underscores that are
	// not leading.
	ErrInvalidActorSystemName = errors.New("invalid ActorSystem name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrNameRequired is returned when an actor system name is required but not provided.
	ErrNameRequired = errors.New("actor system name is required")

	// ErrInvalidActorName is returned when an actor name contains invalid characters.
	ErrInvalidActorName = errors.New("invalid actor name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrActorSystemNotStarted is returned when the actor system has not started yet.
	ErrActorSystemNotStarted = errors.New("actor system has not started yet")

	// ErrActorSystemAlreadyStarted is returned when the actor system has already started.
	ErrActorSystemAlreadyStarted = errors.New("actor system has already started")

	// ErrDead indicates that the actor is no longer alive or has been terminated.
	ErrDead = errors.New("actor is not alive")

	// ErrUnhandled is returned when an actor receives a message its current
	// behavior cannot handle.
	ErrUnhandled = errors.New("unhandled message")

	// ErrActorNotFound indicates that the specified actor could not be found in the system.
	ErrActorNotFound = errors.New("actor not found")

	// ErrActorAlreadyExists is returned when an actor with the same name is
	// already registered in the system.
	ErrActorAlreadyExists = errors.New("actor already exists")

	// ErrInitFailure is returned when the actor's PreStart hook fails during
	// initialization or restart.
	ErrInitFailure = errors.New("preStart failed")

	// ErrInitialBehaviorRequired is returned when an actor's InitialBehavior
	// returns a nil or empty handler set.
	ErrInitialBehaviorRequired = errors.New("actor requires a non-empty initial behavior")

	// ErrInvalidMessage is returned when a nil message is sent to an actor.
	ErrInvalidMessage = errors.New("message is invalid")

	// ErrMailboxFull is returned by a bounded mailbox when the mailbox has
	// reached its capacity.
	ErrMailboxFull = errors.New("mailbox is full")

	// ErrMailboxClosed is returned when a message is enqueued into a disposed mailbox.
	ErrMailboxClosed = errors.New("mailbox is closed")
)
