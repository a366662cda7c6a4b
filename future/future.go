// Package future provides a single-resolution asynchronous result
// handle. A value resolves at most once, to either a result or an
// error, and every waiter observes the same outcome.
package future

import (
	"context"
	"sync"
)

// Value is a single-resolution future. The zero value is not usable;
// create one with New.
type Value[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

// New creates an unresolved future.
func New[T any]() *Value[T] {
	return &Value[T]{done: make(chan struct{})}
}

// Complete resolves the future with a value. It reports whether this
// call performed the resolution; later calls are no-ops.
func (v *Value[T]) Complete(val T) bool {
	return v.resolve(val, nil)
}

// Fail resolves the future with an error. It reports whether this call
// performed the resolution; later calls are no-ops.
func (v *Value[T]) Fail(err error) bool {
	var zero T
	return v.resolve(zero, err)
}

func (v *Value[T]) resolve(val T, err error) bool {
	resolved := false
	v.once.Do(func() {
		v.val = val
		v.err = err
		close(v.done)
		resolved = true
	})
	return resolved
}

// Done returns a channel that is closed once the future resolves.
func (v *Value[T]) Done() <-chan struct{} {
	return v.done
}

// Resolved reports whether the future has resolved.
func (v *Value[T]) Resolved() bool {
	select {
	case <-v.done:
		return true
	default:
		return false
	}
}

// Result blocks until the future resolves or ctx is done. On resolution
// it returns the value or failure; on context expiry it returns the
// context error.
func (v *Value[T]) Result(ctx context.Context) (T, error) {
	select {
	case <-v.done:
		return v.val, v.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
