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

package eventstream

import (
	"sync"

	goset "github.com/deckarep/golang-set/v2"
)

// Stream defines the event stream broker.
type Stream interface {
	// AddSubscriber adds a subscriber.
	AddSubscriber() Subscriber
	// RemoveSubscriber removes a subscriber and shuts it down.
	RemoveSubscriber(sub Subscriber)
	// SubscribersCount returns the number of subscribers for a given topic.
	SubscribersCount(topic string) int
	// Subscribe subscribes a subscriber to a topic.
	Subscribe(sub Subscriber, topic string)
	// Unsubscribe removes a subscriber from a topic.
	Unsubscribe(sub Subscriber, topic string)
	// Publish publishes a message to a topic.
	Publish(topic string, msg any)
	// Broadcast notifies all subscribers of the given topics of a new message.
	Broadcast(msg any, topics []string)
	// Close closes the stream.
	Close()
}

// EventsStream is the default Stream implementation.
// Each topic keeps the set of subscriber ids; the registry maps ids back to
// their subscribers.
type EventsStream struct {
	mu       sync.RWMutex
	registry map[string]Subscriber
	topics   map[string]goset.Set[string]
}

var _ Stream = (*EventsStream)(nil)

// New creates an instance of EventsStream.
func New() Stream {
	return &EventsStream{
		registry: make(map[string]Subscriber),
		topics:   make(map[string]goset.Set[string]),
	}
}

func (b *EventsStream) AddSubscriber() Subscriber {
	sub := newSubscriber()
	b.mu.Lock()
	b.registry[sub.ID()] = sub
	b.mu.Unlock()
	return sub
}

func (b *EventsStream) RemoveSubscriber(sub Subscriber) {
	b.mu.Lock()
	for _, ids := range b.topics {
		ids.Remove(sub.ID())
	}
	delete(b.registry, sub.ID())
	b.mu.Unlock()

	sub.Shutdown()
}

func (b *EventsStream) SubscribersCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if ids, ok := b.topics[topic]; ok {
		return ids.Cardinality()
	}
	return 0
}

func (b *EventsStream) Subscribe(sub Subscriber, topic string) {
	if !sub.Active() {
		return
	}

	sub.subscribe(topic)

	b.mu.Lock()
	ids, ok := b.topics[topic]
	if !ok {
		ids = goset.NewSet[string]()
		b.topics[topic] = ids
	}
	ids.Add(sub.ID())
	b.mu.Unlock()
}

func (b *EventsStream) Unsubscribe(sub Subscriber, topic string) {
	sub.unsubscribe(topic)

	b.mu.Lock()
	if ids, ok := b.topics[topic]; ok {
		ids.Remove(sub.ID())
		if ids.Cardinality() == 0 {
			delete(b.topics, topic)
		}
	}
	b.mu.Unlock()
}

func (b *EventsStream) Publish(topic string, msg any) {
	message := NewMessage(topic, msg)
	for _, sub := range b.topicSubscribers(topic) {
		if sub.Active() {
			sub.signal(message)
		}
	}
}

func (b *EventsStream) Broadcast(msg any, topics []string) {
	for _, topic := range topics {
		b.Publish(topic, msg)
	}
}

func (b *EventsStream) Close() {
	b.mu.Lock()
	for _, sub := range b.registry {
		if sub.Active() {
			sub.Shutdown()
		}
	}
	b.registry = make(map[string]Subscriber)
	b.topics = make(map[string]goset.Set[string])
	b.mu.Unlock()
}

// topicSubscribers snapshots the subscribers of a topic so that signaling
// happens outside the stream lock.
func (b *EventsStream) topicSubscribers(topic string) []Subscriber {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ids, ok := b.topics[topic]
	if !ok {
		return nil
	}
	subs := make([]Subscriber, 0, ids.Cardinality())
	for id := range ids.Iter() {
		if sub, ok := b.registry[id]; ok {
			subs = append(subs, sub)
		}
	}
	return subs
}
