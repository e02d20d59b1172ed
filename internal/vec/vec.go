// internal/vec/vec.go
package vec

import (
	"fmt"

	"go.uber.org/zap"
)

// Vec is a growable sequence of T. The zero value is not usable; construct
// with New or WithCapacity.
type Vec[T any] struct {
	storage []T
	length  int
	leases  leaseSet

	logger   *zap.Logger
	observer Observer
}

// New creates an empty container with capacity 0
func New[T any](opts ...Option) *Vec[T] {
	return WithCapacity[T](0, opts...)
}

// WithCapacity creates an empty container whose backing store holds exactly
// n zero-valued slots. It panics if n is negative.
func WithCapacity[T any](n int, opts ...Option) *Vec[T] {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative capacity %d", n))
	}
	o := buildOptions(opts)
	return &Vec[T]{
		storage:  make([]T, n),
		logger:   o.logger,
		observer: o.observer,
	}
}

// Len returns the number of elements pushed so far
func (v *Vec[T]) Len() int {
	return v.length
}

// Cap returns the size of the backing store
func (v *Vec[T]) Cap() int {
	return len(v.storage)
}

// Leases returns the number of cursors currently holding a lease
func (v *Vec[T]) Leases() int {
	return v.leases.count()
}

// Push appends value, growing the backing store when it is full. It fails
// with ErrBorrowed, leaving the container unchanged, while any cursor
// obtained from Iter is still alive.
func (v *Vec[T]) Push(value T) error {
	if v.leases.count() > 0 {
		err := borrowedError("push", &v.leases)
		v.observer.Rejected("push")
		v.logger.Warn("mutation rejected",
			zap.String("op", "push"),
			zap.Int("leases", v.leases.count()),
			zap.Error(err))
		return err
	}

	if v.length == len(v.storage) {
		v.grow()
	}
	v.storage[v.length] = value
	v.length++
	return nil
}

// MustPush is like Push but panics on an aliasing violation
func (v *Vec[T]) MustPush(value T) {
	if err := v.Push(value); err != nil {
		panic(err)
	}
}

// Get returns the element at index and true, or the zero value and false if
// index is outside [0, Len()).
func (v *Vec[T]) Get(index int) (T, bool) {
	if index < 0 || index >= v.length {
		var zero T
		return zero, false
	}
	return v.storage[index], true
}

// GetOr returns the element at index, or def when there is none
func (v *Vec[T]) GetOr(index int, def T) T {
	if value, ok := v.Get(index); ok {
		return value
	}
	return def
}

// grow replaces the backing store with one of double the size (1 when
// empty) and moves the elements across at the same indices.
func (v *Vec[T]) grow() {
	oldCap := len(v.storage)
	newCap := 1
	if oldCap > 0 {
		newCap = 2 * oldCap
	}

	next := make([]T, newCap)
	moved := copy(next, v.storage[:v.length])
	// The old block must not keep elements reachable after the move.
	clear(v.storage)
	v.storage = next

	v.observer.Grew(oldCap, newCap, moved)
	v.logger.Debug("storage grown",
		zap.Int("old_capacity", oldCap),
		zap.Int("new_capacity", newCap),
		zap.Int("moved", moved))
}
