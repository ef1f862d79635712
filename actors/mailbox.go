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

// Mailbox defines the contract for an actor's message queue.
//
// Concurrency and ordering
//   - Implementations MUST be thread-safe for multiple concurrent producers
//     calling Enqueue.
//   - The actor runtime consumes from a single goroutine, so implementations
//     SHOULD optimize Dequeue for a single consumer (MPSC).
//   - FIFO ordering is expected: messages from one sender to one recipient
//     are delivered in send order.
//
// Non-blocking behavior
//   - Enqueue SHOULD be non-blocking. Bounded implementations MUST return an
//     error when full instead of blocking. Unbounded implementations SHOULD
//     always return nil.
//   - Dequeue SHOULD be non-blocking and return nil when the mailbox is empty.
//     The actor runtime polls Dequeue in a loop.
//
// Resource management
//   - Dispose MUST release any resources and unblock any internal waiters used
//     by the implementation. After Dispose, Enqueue SHOULD fail and Dequeue
//     SHOULD return nil.
type Mailbox interface {
	// Enqueue pushes a message into the mailbox. Bounded mailboxes MUST
	// return an error when full; unbounded mailboxes SHOULD never return an
	// error. Safe for concurrent calls by multiple producers.
	Enqueue(msg *ReceiveContext) error
	// Dequeue fetches a message from the mailbox. Returns nil when the
	// mailbox is empty. Called by a single consumer goroutine.
	Dequeue() (msg *ReceiveContext)
	// IsEmpty reports whether the mailbox currently has no messages.
	// This is a best-effort snapshot under concurrency.
	IsEmpty() bool
	// Len returns a snapshot of the number of messages in the mailbox.
	// Implementations MAY return an approximate value under concurrency.
	Len() int64
	// Dispose releases any resources used by the implementation. The mailbox
	// MUST NOT be used after Dispose returns.
	Dispose()
}
