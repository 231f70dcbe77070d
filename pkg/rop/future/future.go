package future

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrClosed = errors.New("future: channel closed before a value was received")

// PanicError carries a recovered non-error panic value.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Settlement is the final state of a Future.
type Settlement[T any] struct {
	Value    T
	Reason   any
	Rejected bool
}

// Err returns the rejection reason as an error, nil when fulfilled.
func (s Settlement[T]) Err() error {
	if !s.Rejected {
		return nil
	}
	return AsError(s.Reason)
}

// AsError converts a rejection or panic reason to an error.
func AsError(reason any) error {
	if err, ok := reason.(error); ok {
		return err
	}
	return &PanicError{Value: reason}
}

type Future[T any] struct {
	done       chan struct{}
	once       sync.Once
	settlement Settlement[T]
}

func New[T any]() (*Future[T], func(T), func(any)) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.resolve, f.reject
}

func Resolved[T any](v T) *Future[T] {
	f, resolve, _ := New[T]()
	resolve(v)
	return f
}

func Rejected[T any](reason any) *Future[T] {
	f, _, reject := New[T]()
	reject(reason)
	return f
}

// Go runs fn in its own goroutine. A returned error or a panic rejects the
// future, otherwise it is fulfilled with the returned value.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f, resolve, reject := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				reject(r)
			}
		}()

		if err := ctx.Err(); err != nil {
			reject(err)
			return
		}

		v, err := fn(ctx)
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	}()

	return f
}

// FromChan settles with the first value received on ch.
func FromChan[T any](ctx context.Context, ch <-chan T) *Future[T] {
	f, resolve, reject := New[T]()

	go func() {
		select {
		case v, ok := <-ch:
			if !ok {
				reject(ErrClosed)
				return
			}
			resolve(v)
		case <-ctx.Done():
			reject(ctx.Err())
		}
	}()

	return f
}

func (f *Future[T]) resolve(v T) {
	f.settle(Settlement[T]{Value: v})
}

func (f *Future[T]) reject(reason any) {
	f.settle(Settlement[T]{Reason: reason, Rejected: true})
}

// only the first call has effect
func (f *Future[T]) settle(s Settlement[T]) {
	f.once.Do(func() {
		f.settlement = s
		close(f.done)
	})
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Peek returns the settlement without blocking. ok is false while pending.
func (f *Future[T]) Peek() (s Settlement[T], ok bool) {
	if !f.Settled() {
		return s, false
	}
	return f.settlement, true
}

// Wait blocks until the future settles or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (Settlement[T], error) {
	if s, ok := f.Peek(); ok {
		return s, nil
	}

	select {
	case <-f.done:
		return f.settlement, nil
	case <-ctx.Done():
		return Settlement[T]{}, ctx.Err()
	}
}
