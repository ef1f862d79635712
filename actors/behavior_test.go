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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerSet(t *testing.T) {
	t.Run("With name and length", func(t *testing.T) {
		set := NewHandlerSet("authenticating",
			On[*login](func(*ReceiveContext, *login) {}),
			On[*logout](func(*ReceiveContext, *logout) {}),
		)
		assert.Equal(t, "authenticating", set.Name())
		assert.Equal(t, 2, set.Len())
	})
	t.Run("With no registrations", func(t *testing.T) {
		set := NewHandlerSet("empty")
		assert.Zero(t, set.Len())
	})
	t.Run("With immutability after construction", func(t *testing.T) {
		registrations := []Registration{
			On[*login](func(*ReceiveContext, *login) {}),
		}
		set := NewHandlerSet("authenticating", registrations...)
		// mutating the source slice must not affect the set
		registrations[0] = On[*logout](func(*ReceiveContext, *logout) {})
		received := new(ReceiveContext).build(context.TODO(), NoSender, nil, &login{})
		require.Equal(t, Handled, dispatch(set, received))
	})
}

func TestOn(t *testing.T) {
	t.Run("With concrete type match", func(t *testing.T) {
		handled := false
		set := NewHandlerSet("default",
			On[*login](func(ctx *ReceiveContext, message *login) {
				handled = true
				assert.Equal(t, "secret", message.password)
			}),
		)
		received := new(ReceiveContext).build(context.TODO(), NoSender, nil, &login{password: "secret"})
		assert.Equal(t, Handled, dispatch(set, received))
		assert.True(t, handled)
	})
	t.Run("With no match", func(t *testing.T) {
		set := NewHandlerSet("default",
			On[*login](func(*ReceiveContext, *login) {}),
		)
		received := new(ReceiveContext).build(context.TODO(), NoSender, nil, &logout{})
		assert.Equal(t, Unhandled, dispatch(set, received))
	})
	t.Run("With interface type match", func(t *testing.T) {
		handled := false
		set := NewHandlerSet("default",
			On[error](func(ctx *ReceiveContext, message error) {
				handled = true
			}),
		)
		received := new(ReceiveContext).build(context.TODO(), NoSender, nil, assert.AnError)
		assert.Equal(t, Handled, dispatch(set, received))
		assert.True(t, handled)
	})
}

func TestWhen(t *testing.T) {
	t.Run("With guard passing", func(t *testing.T) {
		handled := false
		set := NewHandlerSet("default",
			When[*metric](func(message *metric) bool { return message.value > 0 },
				func(ctx *ReceiveContext, message *metric) { handled = true }),
		)
		received := new(ReceiveContext).build(context.TODO(), NoSender, nil, &metric{value: 10})
		assert.Equal(t, Handled, dispatch(set, received))
		assert.True(t, handled)
	})
	t.Run("With guard failing", func(t *testing.T) {
		set := NewHandlerSet("default",
			When[*metric](func(message *metric) bool { return message.value > 0 },
				func(ctx *ReceiveContext, message *metric) {}),
		)
		received := new(ReceiveContext).build(context.TODO(), NoSender, nil, &metric{value: -1})
		assert.Equal(t, Unhandled, dispatch(set, received))
	})
}
