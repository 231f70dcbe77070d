package rop

import (
	"fmt"
	"runtime"
)

// Caller is a best-effort source location. The zero value means unknown.
type Caller struct {
	File string
	Line int
}

func (c Caller) IsZero() bool {
	return c.File == "" && c.Line == 0
}

func (c Caller) String() string {
	if c.IsZero() {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", c.File, c.Line)
}

// Locator resolves the source location of a frame on the current stack.
// Locate(0) identifies the function calling Locate, Locate(1) its caller and
// so on. Implementations must not fail; they return the zero Caller instead.
type Locator interface {
	Locate(skip int) Caller
}

// LocatorFunc adapts a function to Locator. The skip passed to the function
// already accounts for the Locate frame.
type LocatorFunc func(skip int) Caller

func (f LocatorFunc) Locate(skip int) Caller {
	return f(skip + 1)
}

// RuntimeLocator reads locations from runtime.Caller.
type RuntimeLocator struct{}

func (RuntimeLocator) Locate(skip int) Caller {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{}
	}
	return Caller{File: file, Line: line}
}

// NoLocator never resolves anything.
var NoLocator Locator = LocatorFunc(func(int) Caller { return Caller{} })
