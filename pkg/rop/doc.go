// Package rop turns failing computations into values the caller has to
// unwrap explicitly, and manufactures contextualized errors on demand.
//
// An Executor is bound once to a Builder, the default error factory. Running a
// computation through it yields a Result (or a ResultAsync for pending
// futures). The chain is then finished with Expect or Or.
//
// Highlights:
// - New: create an Executor from a Builder
// - Run/Try: execute synchronously, capturing returned errors and panics
// - Async/Spawn/Go: wrap a pending future.Future as a ResultAsync
// - When/WhenMessage: register a sentinel handler (Zero, Nil, Empty, Instance)
// - Expect/MustExpect: terminal call returning the value or the built error
// - Or/OrElse: terminal call returning the value or a fallback
//
// Sentinel handlers are checked against the captured failure, or against the
// success value when nothing failed, in registration order. The first match
// wins.
//
// Example:
//
//	x := rop.New(func(ctx rop.Context, args ...any) error {
//		msg, _ := ctx.Message()
//		return fmt.Errorf("%s (%s): %w", msg, ctx.Caller(), ctx.Err())
//	})
//
//	user, err := rop.Try(x, func() (*User, error) { return repo.Find(id) }).
//		WhenMessage(rop.Nil(), "user not found").
//		Expect("lookup failed")
package rop
