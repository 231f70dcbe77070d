package rop

import "fmt"

// fault is the error type produced by the test builder.
type fault struct {
	message    string
	hasMessage bool
	source     any
	caller     Caller
	args       []any
}

func (f *fault) Error() string {
	return fmt.Sprintf("fault: %s", f.message)
}

type builderSpy struct {
	calls int
	last  Context
}

func (s *builderSpy) build(ctx Context, args ...any) *fault {
	s.calls++
	s.last = ctx
	msg, ok := ctx.Message()
	return &fault{message: msg, hasMessage: ok, source: ctx.Source(), caller: ctx.Caller(), args: args}
}

func newSpyExecutor(opts ...Option) (*Executor[*fault], *builderSpy) {
	spy := &builderSpy{}
	return New(spy.build, opts...), spy
}

type queryError struct {
	table string
}

func (e *queryError) Error() string {
	return "query failed on " + e.table
}

// notFoundError refines queryError through its Unwrap chain.
type notFoundError struct {
	query *queryError
}

func (e *notFoundError) Error() string {
	return "not found: " + e.query.Error()
}

func (e *notFoundError) Unwrap() error {
	return e.query
}
