// Package future contains a minimal settle-once Future[T], the pending
// computation wrapped by rop.ResultAsync.
//
// Highlights:
// - New: create a Future with its resolve/reject functions
// - Resolved/Rejected: construct already-settled futures
// - Go: run a function in a goroutine, panics become rejections
// - FromChan: settle from the first value received on a channel
// - Wait/Peek/Settled/Done: observe settlement
//
// A Future cannot be cancelled. The context passed to Wait only bounds how
// long the caller is willing to wait.
package future
