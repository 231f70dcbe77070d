package rop

import (
	"time"

	"github.com/google/uuid"
)

// Context describes a single failure for an error factory. It is built fresh
// for every assertion or fallback invocation and never changes afterwards.
type Context struct {
	id         uuid.UUID
	resultID   uuid.UUID
	createdAt  time.Time
	source     any
	caller     Caller
	message    string
	hasMessage bool
}

func newContext(resultID uuid.UUID, source any, caller Caller) Context {
	return Context{
		id:        uuid.New(),
		resultID:  resultID,
		createdAt: time.Now().UTC(),
		source:    source,
		caller:    caller,
	}
}

func (c Context) withMessage(message string) Context {
	c.message = message
	c.hasMessage = true
	return c
}

func (c Context) ID() uuid.UUID {
	return c.id
}

// ResultID identifies the Result the context was built for.
func (c Context) ResultID() uuid.UUID {
	return c.resultID
}

func (c Context) CreatedAt() time.Time {
	return c.createdAt
}

// Source is the captured failure, or the success value a sentinel matched.
func (c Context) Source() any {
	return c.source
}

// Err returns Source when it is an error.
func (c Context) Err() error {
	err, _ := c.source.(error)
	return err
}

func (c Context) Caller() Caller {
	return c.caller
}

// Message is only present when the assertion supplied a literal message.
func (c Context) Message() (string, bool) {
	return c.message, c.hasMessage
}
