package rop

import (
	"context"
	"errors"

	"github.com/ib-77/ropx/pkg/rop/future"
)

var (
	// ErrPending is returned by terminal calls on a ResultAsync whose future
	// has not settled yet.
	ErrPending = errors.New("rop: result is still pending")

	// ErrNilFault is returned when an error factory produced a nil error.
	ErrNilFault = errors.New("rop: error factory returned nil")

	ErrNilFuture = errors.New("rop: nil future")
	ErrNoReason  = errors.New("rop: failure without a reason")
)

// PanicError wraps recovered panic values that are not errors.
type PanicError = future.PanicError

// Builder is the default error factory of an Executor. It receives the
// failure Context and the extra arguments given to Expect or WhenMessage.
type Builder[E error] func(ctx Context, args ...any) E

type Option func(*options)

type options struct {
	locator Locator
}

// WithLocator replaces the runtime.Caller based location lookup.
func WithLocator(l Locator) Option {
	return func(o *options) {
		if l != nil {
			o.locator = l
		}
	}
}

// WithoutLocation disables caller capture, every Context reports the zero Caller.
func WithoutLocation() Option {
	return WithLocator(NoLocator)
}

// Executor runs computations and wraps their outcome into results bound to
// its Builder. It holds no other state and is safe for concurrent use.
type Executor[E error] struct {
	build   Builder[E]
	locator Locator
}

func New[E error](build Builder[E], opts ...Option) *Executor[E] {
	if build == nil {
		panic("rop: nil builder")
	}

	o := options{locator: RuntimeLocator{}}
	for _, opt := range opts {
		opt(&o)
	}

	return &Executor[E]{build: build, locator: o.locator}
}

// Run invokes fn once. A panic becomes the captured failure.
func Run[T any, E error](x *Executor[E], fn func() T) (r Result[T, E]) {
	defer func() {
		if p := recover(); p != nil {
			r = Fail[T](x, p)
		}
	}()

	return Success(x, fn())
}

// Try invokes fn once. A non-nil error or a panic becomes the captured failure.
func Try[T any, E error](x *Executor[E], fn func() (T, error)) (r Result[T, E]) {
	defer func() {
		if p := recover(); p != nil {
			r = Fail[T](x, p)
		}
	}()

	v, err := fn()
	if err != nil {
		return Fail[T](x, err)
	}
	return Success(x, v)
}

// Async wraps an already pending computation.
func Async[T any, E error](x *Executor[E], f *future.Future[T]) ResultAsync[T, E] {
	if f == nil {
		f = future.Rejected[T](ErrNilFuture)
	}
	return newResultAsync(x, f)
}

// Spawn invokes fn once to obtain the pending computation. A synchronous panic
// yields an already rejected ResultAsync.
func Spawn[T any, E error](x *Executor[E], fn func() *future.Future[T]) (r ResultAsync[T, E]) {
	defer func() {
		if p := recover(); p != nil {
			r = newResultAsync(x, future.Rejected[T](p))
		}
	}()

	return Async(x, fn())
}

// Go spawns fn on its own goroutine via future.Go.
func Go[T any, E error](x *Executor[E], ctx context.Context,
	fn func(ctx context.Context) (T, error)) ResultAsync[T, E] {
	return Spawn(x, func() *future.Future[T] {
		return future.Go(ctx, fn)
	})
}
