package rop_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/future"
)

type statusError struct {
	message string
	status  int
	cause   error
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%d %s", e.status, e.message)
}

func (e *statusError) Unwrap() error {
	return e.cause
}

func build(ctx rop.Context, args ...any) *statusError {
	msg, _ := ctx.Message()
	status := 500
	if len(args) > 0 {
		if s, ok := args[0].(int); ok {
			status = s
		}
	}
	return &statusError{message: msg, status: status, cause: ctx.Err()}
}

func ExampleResult_Expect() {
	x := rop.New(build)

	_, err := rop.Try(x, func() (int, error) {
		return 0, errors.New("boom")
	}).Expect("fallback message", 503)

	fmt.Println(err)
	fmt.Println(errors.Unwrap(err))
	// Output:
	// 503 fallback message
	// boom
}

func ExampleResult_When() {
	x := rop.New(build)

	_, err := rop.Run(x, func() *string { return nil }).
		When(rop.Nil(), func(ctx rop.Context) *statusError {
			return &statusError{message: "was nil", status: 404}
		}).
		Expect("unused")

	fmt.Println(err)
	// Output: 404 was nil
}

func ExampleResult_Or() {
	x := rop.New(build)

	fmt.Println(rop.Run(x, func() int { return 42 }).Or(0))
	fmt.Println(rop.Run(x, func() int { panic("boom") }).Or(0))
	// Output:
	// 42
	// 0
}

func ExampleResultAsync_Await() {
	x := rop.New(build)
	ctx := context.Background()

	fetchSomething := future.Go(ctx, func(ctx context.Context) (int, error) {
		return 0, errors.New("unreachable")
	})

	res, err := rop.Async(x, fetchSomething).Await(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.OrElse(func(rop.Context) int { return -1 }))
	// Output: -1
}
