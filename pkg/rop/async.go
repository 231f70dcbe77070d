package rop

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mudler/xlog"

	"github.com/ib-77/ropx/pkg/rop/future"
)

// ResultAsync is a Result whose outcome is a pending future. Handlers can be
// registered at any time; terminal calls require the future to have settled
// and report ErrPending otherwise. Use Await to wait for settlement.
type ResultAsync[T any, E error] struct {
	x         *Executor[E]
	id        uuid.UUID
	createdAt time.Time
	pending   *future.Future[T]
	handlers  []handler[E]
}

func newResultAsync[T any, E error](x *Executor[E], f *future.Future[T]) ResultAsync[T, E] {
	return ResultAsync[T, E]{
		x:         x,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		pending:   f,
	}
}

func (r ResultAsync[T, E]) ID() uuid.UUID {
	return r.id
}

func (r ResultAsync[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r ResultAsync[T, E]) Settled() bool {
	return r.pending.Settled()
}

func (r ResultAsync[T, E]) Done() <-chan struct{} {
	return r.pending.Done()
}

func (r ResultAsync[T, E]) When(m Matcher, fn func(ctx Context) E) ResultAsync[T, E] {
	r.handlers = appendHandler(r.handlers, handler[E]{matcher: m, fn: fn})
	return r
}

func (r ResultAsync[T, E]) WhenMessage(m Matcher, message string, args ...any) ResultAsync[T, E] {
	r.handlers = appendHandler(r.handlers, handler[E]{matcher: m, message: message, args: args})
	return r
}

// Await blocks until the future settles and returns the settled Result with
// the handlers registered so far. It returns ctx.Err() if ctx is done first.
func (r ResultAsync[T, E]) Await(ctx context.Context) (Result[T, E], error) {
	s, err := r.pending.Wait(ctx)
	if err != nil {
		return Result[T, E]{}, err
	}
	return r.settle(s), nil
}

// Resolve is the non-blocking Await, ErrPending while the future is pending.
func (r ResultAsync[T, E]) Resolve() (Result[T, E], error) {
	s, ok := r.pending.Peek()
	if !ok {
		xlog.Warn("rop: terminal call on a pending result", "result", r.id)
		return Result[T, E]{}, ErrPending
	}
	return r.settle(s), nil
}

func (r ResultAsync[T, E]) Expect(message string, args ...any) (T, error) {
	res, err := r.Resolve()
	if err != nil {
		var zero T
		return zero, err
	}
	return res.expect(2, message, args)
}

func (r ResultAsync[T, E]) Or(v T) (T, error) {
	res, err := r.Resolve()
	if err != nil {
		var zero T
		return zero, err
	}
	return res.Or(v), nil
}

func (r ResultAsync[T, E]) OrElse(fn func(ctx Context) T) (T, error) {
	res, err := r.Resolve()
	if err != nil {
		var zero T
		return zero, err
	}
	return res.orElse(2, fn), nil
}

func (r ResultAsync[T, E]) settle(s future.Settlement[T]) Result[T, E] {
	res := Result[T, E]{
		x:         r.x,
		id:        r.id,
		createdAt: r.createdAt,
		handlers:  r.handlers,
	}

	if s.Rejected {
		res.failure, res.failed = s.Reason, true
		if res.failure == nil {
			res.failure = ErrNoReason
		}
	} else {
		res.value = s.Value
	}
	return res
}
