package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mudler/xlog"

	"github.com/ib-77/ropx/pkg/rop/future"
)

// handler is a registered sentinel. fn takes precedence; without it the
// executor's Builder is called with message and args.
type handler[E error] struct {
	matcher Matcher
	fn      func(ctx Context) E
	message string
	args    []any
}

func appendHandler[E error](handlers []handler[E], h handler[E]) []handler[E] {
	out := make([]handler[E], len(handlers), len(handlers)+1)
	copy(out, handlers)
	return append(out, h)
}

// Result holds either a success value or a captured failure, never both,
// plus the sentinel handlers registered so far. Results are values: every
// registration returns a new Result and terminal calls never modify it.
type Result[T any, E error] struct {
	x         *Executor[E]
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   any
	failed    bool
	handlers  []handler[E]
}

func Success[T any, E error](x *Executor[E], v T) Result[T, E] {
	return Result[T, E]{
		x:         x,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
	}
}

// Fail captures reason as a failure. A nil reason is replaced by ErrNoReason.
func Fail[T any, E error](x *Executor[E], reason any) Result[T, E] {
	if reason == nil {
		reason = ErrNoReason
	}
	return Result[T, E]{
		x:         x,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		failure:   reason,
		failed:    true,
	}
}

func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Value returns the success value, the zero T on failure.
func (r Result[T, E]) Value() T {
	return r.value
}

// Failure returns the captured failure as it was returned, panicked or
// rejected.
func (r Result[T, E]) Failure() any {
	return r.failure
}

func (r Result[T, E]) Err() error {
	if !r.failed {
		return nil
	}
	return future.AsError(r.failure)
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T, E]) IsFailure() bool {
	return r.failed
}

// IsCancel reports a failure caused by context cancellation or deadline.
func (r Result[T, E]) IsCancel() bool {
	return r.failed && IsCancellationError(r.Err())
}

// When registers fn as the error factory for subjects matching m. fn runs
// lazily, only when a terminal Expect finds the match.
func (r Result[T, E]) When(m Matcher, fn func(ctx Context) E) Result[T, E] {
	r.handlers = appendHandler(r.handlers, handler[E]{matcher: m, fn: fn})
	return r
}

// WhenMessage registers the executor's Builder, called with message and
// args, for subjects matching m.
func (r Result[T, E]) WhenMessage(m Matcher, message string, args ...any) Result[T, E] {
	r.handlers = appendHandler(r.handlers, handler[E]{matcher: m, message: message, args: args})
	return r
}

// Expect finishes the chain. The first registered handler matching the
// failure (or the success value) builds the returned error. Without a match
// a failure is reported through the Builder with message and args, and a
// success value is returned as is.
func (r Result[T, E]) Expect(message string, args ...any) (T, error) {
	return r.expect(2, message, args)
}

// MustExpect is like Expect but panics with the error.
func (r Result[T, E]) MustExpect(message string, args ...any) T {
	v, err := r.expect(2, message, args)
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the success value, or v when the computation failed.
func (r Result[T, E]) Or(v T) T {
	if !r.failed {
		return r.value
	}
	return v
}

// OrElse returns the success value, or the result of fn called with the
// failure Context. fn is never called on success.
func (r Result[T, E]) OrElse(fn func(ctx Context) T) T {
	return r.orElse(2, fn)
}

func (r Result[T, E]) subject() any {
	if r.failed {
		return r.failure
	}
	return r.value
}

// skip counts frames from expect to the caller of the public method.
func (r Result[T, E]) expect(skip int, message string, args []any) (T, error) {
	var zero T
	subject := r.subject()

	for _, h := range r.handlers {
		if h.matcher == nil || !h.matcher.Match(subject) {
			continue
		}

		ctx := r.context(skip+1, subject)
		if h.fn != nil {
			return zero, r.raise(h.fn(ctx), ctx)
		}
		ctx = ctx.withMessage(h.message)
		return zero, r.raise(r.x.build(ctx, h.args...), ctx)
	}

	if !r.failed {
		return r.value, nil
	}

	ctx := r.context(skip+1, r.failure).withMessage(message)
	return zero, r.raise(r.x.build(ctx, args...), ctx)
}

func (r Result[T, E]) orElse(skip int, fn func(ctx Context) T) T {
	if !r.failed {
		return r.value
	}
	return fn(r.context(skip+1, r.failure))
}

func (r Result[T, E]) context(skip int, source any) Context {
	return newContext(r.id, source, r.x.locator.Locate(skip))
}

func (r Result[T, E]) raise(fault E, ctx Context) error {
	if IsNil(fault) {
		xlog.Warn("rop: error factory returned nil", "result", r.id, "caller", ctx.Caller().String())
		return fmt.Errorf("%w (context %s)", ErrNilFault, ctx.ID())
	}

	xlog.Debug("rop: expectation failed", "result", r.id, "context", ctx.ID(),
		"caller", ctx.Caller().String(), "error", fault)
	return fault
}
