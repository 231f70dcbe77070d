// Package platform wires rop executors to structured errors from
// github.com/jmgilman/go/errors.
//
// Build is a rop.Builder that turns the failure Context and the extra
// Expect arguments into a PlatformError:
// - int: HTTP-like status, mapped to an ErrorCode
// - errors.ErrorCode: used as is
// - map[string]any: merged into the error context
// - string key followed by a value: a single context field
//
// Status and Response go the other way, for handlers writing errors to the
// wire.
package platform
