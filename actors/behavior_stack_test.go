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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBehaviorStack(t *testing.T) {
	t.Run("With new stack", func(t *testing.T) {
		stack := newBehaviorStack()
		assert.True(t, stack.IsEmpty())
		assert.Zero(t, stack.Len())
		assert.Nil(t, stack.Peek())
		assert.Nil(t, stack.Pop())
	})
	t.Run("With push and peek", func(t *testing.T) {
		stack := newBehaviorStack()
		first := NewHandlerSet("first")
		second := NewHandlerSet("second")

		stack.Push(first)
		assert.Equal(t, 1, stack.Len())
		assert.Same(t, first, stack.Peek())

		stack.Push(second)
		assert.Equal(t, 2, stack.Len())
		assert.Same(t, second, stack.Peek())
	})
	t.Run("With pop", func(t *testing.T) {
		stack := newBehaviorStack()
		first := NewHandlerSet("first")
		second := NewHandlerSet("second")
		stack.Push(first)
		stack.Push(second)

		popped := stack.Pop()
		assert.Same(t, second, popped)
		assert.Equal(t, 1, stack.Len())
		assert.Same(t, first, stack.Peek())
	})
	t.Run("With reset", func(t *testing.T) {
		stack := newBehaviorStack()
		stack.Push(NewHandlerSet("first"))
		stack.Push(NewHandlerSet("second"))

		stack.Reset()
		assert.True(t, stack.IsEmpty())
		assert.Nil(t, stack.Peek())
	})
}
