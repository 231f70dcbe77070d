package rop

import (
	"errors"
	"reflect"
)

// Matcher decides whether a subject (a captured failure or a success value)
// is one of the shapes a handler was registered for.
type Matcher interface {
	Match(subject any) bool
}

type MatcherFunc func(subject any) bool

func (f MatcherFunc) Match(subject any) bool {
	return f(subject)
}

var errorType = reflect.TypeFor[error]()

// Zero matches the zero value of the subject's type, including untyped nil.
func Zero() Matcher {
	return MatcherFunc(func(subject any) bool {
		return subject == nil || reflect.ValueOf(subject).IsZero()
	})
}

// Nil matches untyped nil and nil pointers, maps, slices, chans, funcs and
// interfaces.
func Nil() Matcher {
	return MatcherFunc(IsNil)
}

// Empty matches strings, slices, maps, arrays and chans of length zero, and
// untyped nil.
func Empty() Matcher {
	return MatcherFunc(func(subject any) bool {
		if subject == nil {
			return true
		}

		switch v := reflect.ValueOf(subject); v.Kind() {
		case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
			return v.Len() == 0
		}
		return false
	})
}

// Instance matches subjects of type C. Errors are searched with errors.As, so
// a wrapped C anywhere in the chain matches as well.
func Instance[C any]() Matcher {
	target := reflect.TypeFor[C]()
	searchChain := target.Kind() == reflect.Interface || target.Implements(errorType)

	return MatcherFunc(func(subject any) bool {
		if err, ok := subject.(error); ok && searchChain {
			var c C
			if errors.As(err, &c) {
				return true
			}
		}
		_, ok := subject.(C)
		return ok
	})
}

// Is matches error subjects whose chain contains target.
func Is(target error) Matcher {
	return MatcherFunc(func(subject any) bool {
		err, ok := subject.(error)
		return ok && errors.Is(err, target)
	})
}
