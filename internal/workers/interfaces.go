// Package workers runs the background jobs of the auth server. Every worker
// blocks in Run until its context is cancelled.
package workers

import "context"

// Worker is a long-running background job.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
