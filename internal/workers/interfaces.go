// Package workers provides the background execution primitives of the
// stellar kit.
//
// A [Serial] queue runs submitted jobs one at a time on a single goroutine,
// which is how a kit guarantees that at most one sync cycle is in flight and
// that the local store has a single writer.
package workers

import "context"

// Job is a unit of background work. ctx is cancelled when the queue stops.
type Job func(ctx context.Context)

// Worker runs submitted jobs in the background until stopped. The sync
// engine drives its cycles through one.
type Worker interface {
	Start(ctx context.Context)
	// Stop cancels the running job and waits until the worker has exited.
	Stop()
	// Submit queues job and reports whether the worker accepted it.
	Submit(job Job) bool
}

var _ Worker = (*Serial)(nil)
