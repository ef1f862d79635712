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
	"fmt"
	"sync"
	"time"

	"github.com/flowchartsman/retry"
	"go.uber.org/atomic"

	"github.com/tochemey/conduct/eventstream"
	"github.com/tochemey/conduct/log"
)

const (
	// idle means there are no messages to process
	idle int32 = iota
	// busy means the PID is processing messages
	busy
)

// NoSender represents the absence of a sender. Messages sent with the
// package-level Tell carry NoSender.
var NoSender *PID

// PID represents a running actor process. With the PID one can send messages
// to the actor, restart it or shut it down. A PID owns exactly one mailbox
// and one behavior stack; at most one message is in flight at any instant
// and behavior switches requested by an action take effect when that action
// returns, before the next message is dequeued.
type PID struct {
	actor Actor

	// name is the unique name of the actor within its actor system
	name string

	// initialBehavior is captured once at start; restarts reset the stack
	// to this exact handler set
	initialBehavior *HandlerSet

	// specifies the actor mailbox
	mailbox Mailbox

	// specifies the current behavior stack of the actor
	behaviorStack *behaviorStack

	// helps determine whether the actor should handle messages or not
	started *atomic.Bool
	// processing is the execution token: only the goroutine that flips it
	// from idle to busy drains the mailbox
	processing *atomic.Int32

	// definition of the various counters
	processedCount *atomic.Uint64
	restartCount   *atomic.Uint64
	panicCount     *atomic.Uint64
	unhandledCount *atomic.Uint64

	// specifies the maximum of retries to attempt when the actor
	// initialization fails
	initMaxRetries *atomic.Int32
	// initTimeout specifies the max wait for a successful initialization
	initTimeout *atomic.Duration

	// unhandledPolicy defines what to do with messages the active behavior
	// does not handle
	unhandledPolicy UnhandledPolicy

	// the actor system
	system ActorSystem

	// specifies the logger to use
	logger log.Logger

	// specifies the events stream to publish lifecycle events, dead letters
	// and faults
	eventsStream eventstream.Stream

	stopLocker *sync.Mutex
}

// newPID creates a new PID
func newPID(name string, actor Actor, system ActorSystem, config *spawnConfig) *PID {
	pid := &PID{
		actor:           actor,
		name:            name,
		mailbox:         config.mailbox,
		behaviorStack:   newBehaviorStack(),
		started:         atomic.NewBool(false),
		processing:      atomic.NewInt32(idle),
		processedCount:  atomic.NewUint64(0),
		restartCount:    atomic.NewUint64(0),
		panicCount:      atomic.NewUint64(0),
		unhandledCount:  atomic.NewUint64(0),
		initMaxRetries:  atomic.NewInt32(int32(config.initMaxRetries)),
		initTimeout:     atomic.NewDuration(config.initTimeout),
		unhandledPolicy: config.unhandledPolicy,
		system:          system,
		logger:          system.Logger(),
		eventsStream:    system.eventsStream(),
		stopLocker:      &sync.Mutex{},
	}
	return pid
}

// Name returns the unique name of the actor within its actor system
func (pid *PID) Name() string {
	return pid.name
}

// IsRunning returns true when the actor is running and ready to process
// messages and false when the actor is stopped or not started at all
func (pid *PID) IsRunning() bool {
	return pid != nil && pid.started.Load()
}

// ActorSystem returns the underlying actor system
func (pid *PID) ActorSystem() ActorSystem {
	return pid.system
}

// Logger returns the logger used by the actor
func (pid *PID) Logger() log.Logger {
	return pid.logger
}

// StackDepth returns the current depth of the behavior stack. It is 1 for a
// freshly started actor and grows only with BecomeStacked.
func (pid *PID) StackDepth() int {
	return pid.behaviorStack.Len()
}

// ActiveBehavior returns the name of the handler set currently governing the
// actor. It returns an empty string when the actor is not running.
func (pid *PID) ActiveBehavior() string {
	if behavior := pid.behaviorStack.Peek(); behavior != nil {
		return behavior.Name()
	}
	return ""
}

// ProcessedCount returns the total number of messages processed by the actor
// at a given point in time
func (pid *PID) ProcessedCount() uint64 {
	return pid.processedCount.Load()
}

// RestartCount returns the number of times the actor has restarted
func (pid *PID) RestartCount() uint64 {
	return pid.restartCount.Load()
}

// PanicCount returns the total number of panics recovered while the actor
// was processing messages
func (pid *PID) PanicCount() uint64 {
	return pid.panicCount.Load()
}

// UnhandledCount returns the total number of messages the actor received
// that its active behavior did not handle
func (pid *PID) UnhandledCount() uint64 {
	return pid.unhandledCount.Load()
}

// MailboxSize returns the current mailbox size
func (pid *PID) MailboxSize() int64 {
	return pid.mailbox.Len()
}

// Tell sends an asynchronous message to another PID. The receiving actor
// sees this actor as the sender. Messages from this actor to a given
// recipient are delivered in send order.
func (pid *PID) Tell(ctx context.Context, to *PID, message any) error {
	if to == nil {
		return ErrActorNotFound
	}
	if message == nil {
		return ErrInvalidMessage
	}
	receiveContext := contextFromPool().build(ctx, pid, to, message)
	return to.doReceive(receiveContext)
}

// Restart resets the behavior stack to the actor's initial behavior and
// re-runs the PreStart hook, discarding all intermediate behaviors. The
// reset happens inside the actor's processing loop, strictly between two
// dispatches. Restart is meant to be called by an external supervision
// collaborator; it must not be called from within the actor's own handlers.
func (pid *PID) Restart(ctx context.Context) error {
	if !pid.IsRunning() {
		return ErrDead
	}
	done := make(chan error, 1)
	receiveContext := contextFromPool().build(ctx, NoSender, pid, &restartRequest{done: done})
	if err := pid.doReceive(receiveContext); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown gracefully shuts down the given actor. All messages enqueued
// before the call are processed first; messages arriving afterwards are
// recorded as dead letters. Shutdown must not be called from within the
// actor's own handlers.
func (pid *PID) Shutdown(ctx context.Context) error {
	pid.stopLocker.Lock()
	defer pid.stopLocker.Unlock()

	if !pid.started.Load() {
		return nil
	}

	done := make(chan error, 1)
	receiveContext := contextFromPool().build(ctx, NoSender, pid, &poisonPill{done: done})
	if err := pid.doReceive(receiveContext); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// start transitions the actor from Starting to Running: the initial behavior
// is pushed as the single element of the behavior stack, then the PreStart
// hook runs with the configured retry policy.
func (pid *PID) start(ctx context.Context) error {
	if pid.started.Load() {
		return nil
	}

	initialBehavior := pid.actor.InitialBehavior()
	if initialBehavior == nil || initialBehavior.Len() == 0 {
		return ErrInitialBehaviorRequired
	}
	pid.initialBehavior = initialBehavior
	pid.behaviorStack.Reset()
	pid.behaviorStack.Push(initialBehavior)

	if err := pid.runPreStart(ctx); err != nil {
		return err
	}

	pid.started.Store(true)
	pid.eventsStream.Publish(EventsTopic, &ActorStarted{
		Name:      pid.name,
		Timestamp: time.Now(),
	})
	pid.logger.Infof("actor=%s successfully started", pid.name)
	return nil
}

// runPreStart runs the actor PreStart hook with the configured retry policy
func (pid *PID) runPreStart(ctx context.Context) error {
	retrier := retry.NewRetrier(int(pid.initMaxRetries.Load()), time.Millisecond, pid.initTimeout.Load())
	if err := retrier.RunContext(ctx, func(ctx context.Context) error {
		return pid.actor.PreStart(newContext(ctx, pid.name, pid.system))
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrInitFailure, err)
	}
	return nil
}

// doReceive pushes a message into the actor's mailbox and schedules
// processing. Messages sent to a stopped actor become dead letters.
func (pid *PID) doReceive(received *ReceiveContext) error {
	if !pid.started.Load() {
		pid.emitDeadletter(received, ErrDead)
		releaseContext(received)
		return ErrDead
	}
	if err := pid.mailbox.Enqueue(received); err != nil {
		pid.logger.Warn(err)
		pid.emitDeadletter(received, err)
		releaseContext(received)
		return err
	}
	pid.process()
	return nil
}

// process drains the mailbox. Only the caller that transitions the execution
// token from idle to busy starts a processing loop, which guarantees that at
// most one message is being processed at any instant and that behavior stack
// mutations are never observed concurrently.
func (pid *PID) process() {
	if !pid.processing.CompareAndSwap(idle, busy) {
		return
	}

	go func() {
		var received *ReceiveContext
		for {
			if received != nil {
				releaseContext(received)
			}

			if received = pid.mailbox.Dequeue(); received != nil {
				switch msg := received.Message().(type) {
				case *poisonPill:
					pid.doStop(received.Context(), msg)
					releaseContext(received)
					return
				case *restartRequest:
					pid.doRestart(received.Context(), msg)
				default:
					pid.handleReceived(received)
				}
			}

			// if no more messages, change busy state to idle
			pid.processing.Store(idle)

			// check if new messages were added in the meantime and restart processing
			if !pid.mailbox.IsEmpty() && pid.processing.CompareAndSwap(idle, busy) {
				continue
			}

			if received != nil {
				releaseContext(received)
			}
			return
		}
	}()
}

// handleReceived resolves the message against the active handler set
func (pid *PID) handleReceived(received *ReceiveContext) {
	defer pid.recovery(received)
	behavior := pid.behaviorStack.Peek()
	if behavior == nil {
		return
	}
	pid.processedCount.Inc()
	if dispatch(behavior, received) == Unhandled {
		pid.handleUnhandled(received, behavior)
		return
	}
	if received.err != nil {
		pid.handleFault(received, received.err)
	}
}

// recovery recovers from a panic attack raised by a message handler. The
// faulted message is never retried; the fault is published for an external
// supervision collaborator to act upon.
func (pid *PID) recovery(received *ReceiveContext) {
	if r := recover(); r != nil {
		pid.panicCount.Inc()
		pid.handleFault(received, fmt.Errorf("%v", r))
	}
}

// handleUnhandled applies the unhandled-message policy. Unhandled messages
// never fault the actor.
func (pid *PID) handleUnhandled(received *ReceiveContext, behavior *HandlerSet) {
	pid.unhandledCount.Inc()
	switch pid.unhandledPolicy {
	case DropPolicy:
	case LogPolicy:
		pid.logger.Warnf("actor=%s behavior=%s received unhandled message %T", pid.name, behavior.Name(), received.Message())
	default:
		pid.emitDeadletter(received, ErrUnhandled)
	}
}

// handleFault reports a message-handling fault
func (pid *PID) handleFault(received *ReceiveContext, err error) {
	pid.logger.Errorf("actor=%s failed to handle message %T: %v", pid.name, received.Message(), err)
	pid.eventsStream.Publish(FaultsTopic, &ActorFault{
		Name:      pid.name,
		Message:   received.Message(),
		Err:       err,
		Timestamp: time.Now(),
	})
}

// emitDeadletter publishes the given message as a dead letter
func (pid *PID) emitDeadletter(received *ReceiveContext, reason error) {
	var sender string
	if received.Sender() != nil {
		sender = received.Sender().Name()
	}
	pid.eventsStream.Publish(DeadlettersTopic, &Deadletter{
		Sender:    sender,
		Recipient: pid.name,
		Message:   received.Message(),
		Behavior:  pid.ActiveBehavior(),
		Reason:    reason.Error(),
		Timestamp: time.Now(),
	})
}

// doStop finalizes the actor shutdown from within the processing loop
func (pid *PID) doStop(ctx context.Context, msg *poisonPill) {
	pid.started.Store(false)

	// discard whatever is left in the mailbox as dead letters; control
	// messages have their caller unblocked instead
	for {
		remaining := pid.mailbox.Dequeue()
		if remaining == nil {
			break
		}
		switch leftover := remaining.Message().(type) {
		case *poisonPill:
			leftover.done <- ErrDead
		case *restartRequest:
			leftover.done <- ErrDead
		default:
			pid.emitDeadletter(remaining, ErrDead)
		}
		releaseContext(remaining)
	}
	pid.mailbox.Dispose()

	err := pid.actor.PostStop(newContext(ctx, pid.name, pid.system))
	pid.behaviorStack.Reset()
	pid.eventsStream.Publish(EventsTopic, &ActorStopped{
		Name:      pid.name,
		Timestamp: time.Now(),
	})
	pid.logger.Infof("actor=%s successfully stopped", pid.name)
	msg.done <- err
}

// doRestart resets the behavior stack to the initial behavior and re-runs
// the PreStart hook, all from within the processing loop
func (pid *PID) doRestart(ctx context.Context, msg *restartRequest) {
	pid.behaviorStack.Reset()
	pid.behaviorStack.Push(pid.initialBehavior)

	if err := pid.runPreStart(ctx); err != nil {
		pid.started.Store(false)
		pid.logger.Errorf("actor=%s failed to restart: %v", pid.name, err)
		msg.done <- err
		return
	}

	pid.restartCount.Inc()
	pid.eventsStream.Publish(EventsTopic, &ActorRestarted{
		Name:      pid.name,
		Timestamp: time.Now(),
	})
	pid.logger.Infof("actor=%s successfully restarted", pid.name)
	msg.done <- nil
}

// setBehavior replaces the top of the behavior stack with the given handler
// set. The stack depth is unchanged and the previous top is discarded.
func (pid *PID) setBehavior(behavior *HandlerSet) {
	pid.behaviorStack.Pop()
	pid.behaviorStack.Push(behavior)
}

// setBehaviorStacked pushes the given handler set on top of the current one
func (pid *PID) setBehaviorStacked(behavior *HandlerSet) {
	pid.behaviorStack.Push(behavior)
}

// unsetBehaviorStacked reverts to the previous handler set. Popping the
// initial behavior is a deliberate no-op.
func (pid *PID) unsetBehaviorStacked() {
	if pid.behaviorStack.Len() > 1 {
		pid.behaviorStack.Pop()
	}
}
