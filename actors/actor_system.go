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
	"os"
	"regexp"
	"sync"
	"time"

	goset "github.com/deckarep/golang-set/v2"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/tochemey/conduct/eventstream"
	"github.com/tochemey/conduct/log"
)

// ActorSystem defines the contract of an actor system
type ActorSystem interface {
	// Name returns the actor system name
	Name() string
	// Logger returns the logger sink
	Logger() log.Logger
	// Start starts the actor system
	Start(ctx context.Context) error
	// Stop stops the actor system and all its actors
	Stop(ctx context.Context) error
	// Spawn creates an actor in the system and starts it
	Spawn(ctx context.Context, name string, actor Actor, opts ...SpawnOption) (*PID, error)
	// Kill stops a given actor in the system
	Kill(ctx context.Context, name string) error
	// Restart restarts a given actor in the system, resetting its behavior
	// stack to the initial behavior
	Restart(ctx context.Context, name string) error
	// LocalActor returns the reference of a given actor
	LocalActor(name string) (*PID, error)
	// Actors returns the list of running actors in the system
	Actors() []*PID
	// NumActors returns the total number of running actors in the system
	NumActors() uint64
	// Subscribe creates an events subscriber
	Subscribe() (eventstream.Subscriber, error)
	// Unsubscribe unsubscribes a subscriber
	Unsubscribe(subscriber eventstream.Subscriber) error

	// eventsStream returns the underlying events stream
	eventsStream() eventstream.Stream
}

// actorSystem implements the ActorSystem interface
type actorSystem struct {
	// map of actors in the system keyed by their name
	actors     map[string]*PID
	actorsLock *sync.RWMutex

	// states whether the actor system has started or not
	started atomic.Bool

	// specifies the actor system name
	name string
	// specifies the logger to use in the system
	logger log.Logger

	// system-wide defaults applied to every spawned actor
	actorInitMaxRetries int
	actorInitTimeout    time.Duration
	unhandledPolicy     UnhandledPolicy
	shutdownTimeout     time.Duration

	// specifies the events stream
	stream eventstream.Stream

	locker sync.Mutex
}

var (
	// enforce compilation error when all methods of the ActorSystem interface are not implemented
	// by the struct actorSystem
	_ ActorSystem = (*actorSystem)(nil)

	// actorSystemNameRegex defines the valid actor system and actor names
	actorSystemNameRegex = regexp.MustCompile("^[a-zA-Z0-9][a-zA-Z0-9-_]*$")

	// reservedNames cannot be used as actor names
	reservedNames = goset.NewSet("system", "deadletters", "eventstream")
)

// NewActorSystem creates an instance of ActorSystem with the various provided options
func NewActorSystem(name string, opts ...Option) (ActorSystem, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if !actorSystemNameRegex.MatchString(name) {
		return nil, ErrInvalidActorSystemName
	}

	system := &actorSystem{
		actors:              make(map[string]*PID),
		actorsLock:          &sync.RWMutex{},
		name:                name,
		logger:              log.New(log.ErrorLevel, os.Stderr),
		actorInitMaxRetries: DefaultInitMaxRetries,
		actorInitTimeout:    DefaultInitTimeout,
		unhandledPolicy:     DefaultUnhandledPolicy,
		shutdownTimeout:     DefaultShutdownTimeout,
		stream:              eventstream.New(),
	}

	for _, opt := range opts {
		opt.Apply(system)
	}

	return system, nil
}

// Name returns the actor system name
func (x *actorSystem) Name() string {
	x.locker.Lock()
	defer x.locker.Unlock()
	return x.name
}

// Logger returns the logger sink
func (x *actorSystem) Logger() log.Logger {
	x.locker.Lock()
	defer x.locker.Unlock()
	return x.logger
}

// Start starts the actor system
func (x *actorSystem) Start(context.Context) error {
	if !x.started.CompareAndSwap(false, true) {
		return ErrActorSystemAlreadyStarted
	}
	x.logger.Infof("%s actor system successfully started", x.name)
	return nil
}

// Stop stops the actor system and all its actors. Actors are shut down
// concurrently; each drains its mailbox before terminating.
func (x *actorSystem) Stop(ctx context.Context) error {
	if !x.started.CompareAndSwap(true, false) {
		return ErrActorSystemNotStarted
	}
	x.logger.Infof("%s actor system is shutting down", x.name)

	ctx, cancel := context.WithTimeout(ctx, x.shutdownTimeout)
	defer cancel()

	x.actorsLock.Lock()
	actors := make([]*PID, 0, len(x.actors))
	for _, pid := range x.actors {
		actors = append(actors, pid)
	}
	x.actors = make(map[string]*PID)
	x.actorsLock.Unlock()

	eg, ctx := errgroup.WithContext(ctx)
	for _, pid := range actors {
		pid := pid
		eg.Go(func() error {
			return pid.Shutdown(ctx)
		})
	}
	err := eg.Wait()

	x.stream.Close()
	x.logger.Infof("%s actor system stopped", x.name)
	return err
}

// Spawn creates an actor in the system with the given name and starts it
func (x *actorSystem) Spawn(ctx context.Context, name string, actor Actor, opts ...SpawnOption) (*PID, error) {
	if !x.started.Load() {
		return nil, ErrActorSystemNotStarted
	}
	if !actorSystemNameRegex.MatchString(name) || reservedNames.Contains(name) {
		return nil, ErrInvalidActorName
	}

	x.actorsLock.Lock()
	defer x.actorsLock.Unlock()

	if _, exists := x.actors[name]; exists {
		return nil, ErrActorAlreadyExists
	}

	pid := newPID(name, actor, x, newSpawnConfig(x, opts...))
	if err := pid.start(ctx); err != nil {
		return nil, err
	}

	x.actors[name] = pid
	return pid, nil
}

// Kill stops a given actor in the system and removes it from the registry
func (x *actorSystem) Kill(ctx context.Context, name string) error {
	if !x.started.Load() {
		return ErrActorSystemNotStarted
	}

	x.actorsLock.Lock()
	pid, exists := x.actors[name]
	if exists {
		delete(x.actors, name)
	}
	x.actorsLock.Unlock()

	if !exists {
		return ErrActorNotFound
	}
	return pid.Shutdown(ctx)
}

// Restart restarts a given actor in the system. The actor keeps its mailbox
// and its place in the registry; its behavior stack is reset to the initial
// behavior and PreStart runs again.
func (x *actorSystem) Restart(ctx context.Context, name string) error {
	if !x.started.Load() {
		return ErrActorSystemNotStarted
	}

	pid, err := x.LocalActor(name)
	if err != nil {
		return err
	}
	return pid.Restart(ctx)
}

// LocalActor returns the reference of a given actor
func (x *actorSystem) LocalActor(name string) (*PID, error) {
	x.actorsLock.RLock()
	defer x.actorsLock.RUnlock()
	pid, exists := x.actors[name]
	if !exists {
		return nil, ErrActorNotFound
	}
	return pid, nil
}

// Actors returns the list of running actors in the system
func (x *actorSystem) Actors() []*PID {
	x.actorsLock.RLock()
	defer x.actorsLock.RUnlock()
	actors := make([]*PID, 0, len(x.actors))
	for _, pid := range x.actors {
		actors = append(actors, pid)
	}
	return actors
}

// NumActors returns the total number of running actors in the system
func (x *actorSystem) NumActors() uint64 {
	x.actorsLock.RLock()
	defer x.actorsLock.RUnlock()
	return uint64(len(x.actors))
}

// Subscribe creates an events subscriber attached to the lifecycle, dead
// letters and faults topics
func (x *actorSystem) Subscribe() (eventstream.Subscriber, error) {
	if !x.started.Load() {
		return nil, ErrActorSystemNotStarted
	}
	subscriber := x.stream.AddSubscriber()
	x.stream.Subscribe(subscriber, EventsTopic)
	x.stream.Subscribe(subscriber, DeadlettersTopic)
	x.stream.Subscribe(subscriber, FaultsTopic)
	return subscriber, nil
}

// Unsubscribe unsubscribes a subscriber
func (x *actorSystem) Unsubscribe(subscriber eventstream.Subscriber) error {
	if !x.started.Load() {
		return ErrActorSystemNotStarted
	}
	x.stream.Unsubscribe(subscriber, EventsTopic)
	x.stream.Unsubscribe(subscriber, DeadlettersTopic)
	x.stream.Unsubscribe(subscriber, FaultsTopic)
	x.stream.RemoveSubscriber(subscriber)
	return nil
}

// eventsStream returns the underlying events stream
func (x *actorSystem) eventsStream() eventstream.Stream {
	return x.stream
}
