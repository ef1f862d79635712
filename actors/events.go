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

const (
	// EventsTopic is the topic on which actor lifecycle events
	// (ActorStarted, ActorRestarted, ActorStopped) are published.
	EventsTopic = "conduct.events"
	// DeadlettersTopic is the topic on which Deadletter events are published.
	DeadlettersTopic = "conduct.deadletters"
	// FaultsTopic is the topic on which ActorFault events are published.
	FaultsTopic = "conduct.faults"
)

// ActorStarted is published on EventsTopic when an actor has successfully started.
type ActorStarted struct {
	// Name is the name of the actor
	Name string
	// Timestamp marks when the actor started
	Timestamp time.Time
}

// ActorRestarted is published on EventsTopic when an actor has successfully
// restarted. The behavior stack has been reset to the initial behavior.
type ActorRestarted struct {
	// Name is the name of the actor
	Name string
	// Timestamp marks when the actor restarted
	Timestamp time.Time
}

// ActorStopped is published on EventsTopic when an actor has stopped.
type ActorStopped struct {
	// Name is the name of the actor
	Name string
	// Timestamp marks when the actor stopped
	Timestamp time.Time
}

// Deadletter is published on DeadlettersTopic when a message could not be
// delivered or was not handled by the recipient's active behavior.
type Deadletter struct {
	// Sender is the name of the sending actor, empty when the message came
	// from outside the actor system
	Sender string
	// Recipient is the name of the actor the message was addressed to
	Recipient string
	// Message is the undelivered message
	Message any
	// Behavior is the name of the handler set that was active, when any
	Behavior string
	// Reason states why the message ended up as a dead letter
	Reason string
	// Timestamp marks when the dead letter was recorded
	Timestamp time.Time
}

// ActorFault is published on FaultsTopic when a message handler panics or
// reports an error via ReceiveContext.Err. The runtime never retries the
// faulted message; recovery (resume, restart or stop) belongs to an external
// supervision collaborator.
type ActorFault struct {
	// Name is the name of the faulting actor
	Name string
	// Message is the message whose handling faulted
	Message any
	// Err is the fault
	Err error
	// Timestamp marks when the fault occurred
	Timestamp time.Time
}

// UnhandledPolicy defines what the runtime does with a message the active
// behavior does not handle. Whatever the policy, unhandled messages never
// fault the actor.
type UnhandledPolicy int

const (
	// DeadletterPolicy publishes unhandled messages on DeadlettersTopic. This
	// is the default.
	DeadletterPolicy UnhandledPolicy = iota
	// LogPolicy logs unhandled messages at warning level.
	LogPolicy
	// DropPolicy silently discards unhandled messages.
	DropPolicy
)

// String returns the text representation of the policy
func (p UnhandledPolicy) String() string {
	switch p {
	case LogPolicy:
		return "Log"
	case DropPolicy:
		return "Drop"
	default:
		return "Deadletter"
	}
}
