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

package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	q := New[int]()
	assert.True(t, q.IsEmpty())
	assert.Zero(t, q.Len())

	_, ok := q.Pop()
	assert.False(t, ok)

	// push beyond the initial capacity to exercise resize
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	assert.False(t, q.IsEmpty())
	assert.Equal(t, 100, q.Len())

	// FIFO order is preserved
	for i := 0; i < 100; i++ {
		item, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, i, item)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueueConcurrentPush(t *testing.T) {
	q := New[int]()
	producers := 10
	perProducer := 100

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, producers*perProducer, q.Len())
	seen := 0
	for {
		if _, ok := q.Pop(); !ok {
			break
		}
		seen++
	}
	assert.Equal(t, producers*perProducer, seen)
}
