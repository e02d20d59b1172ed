package vec

import (
	"iter"

	"github.com/google/uuid"
)

// Cursor walks a container's elements from index 0 upward. It holds a shared
// lease on the container until Release is called or it is exhausted.
type Cursor[T any] struct {
	release func(uuid.UUID) bool
	storage []T
	length  int
	pos     int
	id      uuid.UUID
	done    bool
}

// Iter returns a cursor over the current elements. The container rejects
// mutation until the cursor is released or exhausted.
func (v *Vec[T]) Iter() *Cursor[T] {
	id := v.leases.acquire()
	v.observer.CursorOpened()
	return &Cursor[T]{
		release: v.leases.release,
		storage: v.storage,
		length:  v.length,
		id:      id,
	}
}

// All returns a sequence of index/value pairs backed by a fresh cursor for
// each range loop.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c := v.Iter()
		defer c.Release()
		for i := 0; ; i++ {
			value, ok := c.Next()
			if !ok || !yield(i, value) {
				return
			}
		}
	}
}

// ID returns the cursor's lease ID
func (c *Cursor[T]) ID() uuid.UUID {
	return c.id
}

// Next returns the element at the cursor position and advances. Once it has
// returned false it keeps doing so.
func (c *Cursor[T]) Next() (T, bool) {
	if c.done || c.pos >= c.length {
		c.Release()
		var zero T
		return zero, false
	}
	value := c.storage[c.pos]
	c.pos++
	return value, true
}

// Release ends the cursor's lease. Safe to call more than once.
func (c *Cursor[T]) Release() {
	if c.done {
		return
	}
	c.done = true
	c.storage = nil
	c.release(c.id)
}

// Seq adapts the remaining elements of the cursor for use in a range loop.
// The lease is released when the loop ends.
func (c *Cursor[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer c.Release()
		for {
			value, ok := c.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
