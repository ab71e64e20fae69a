// Package sched provides the frame scheduling contract the marquee engine
// loops on: request a single future callback, cancel a pending request.
// Re-requesting from inside a callback forms a continuous frame loop.
package sched

// Token identifies one pending frame request.
type Token uint64

// Scheduler hands out single future callbacks. Implementations must deliver
// callbacks one at a time so engine state never sees concurrent mutation.
type Scheduler interface {
	// Request registers fn to run on the next frame and returns its token.
	Request(fn func()) Token

	// Cancel drops a pending request. Unknown or already-fired tokens are
	// ignored.
	Cancel(tok Token)
}
