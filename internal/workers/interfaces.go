// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a periodic worker driven by a clock,
// and a Workers aggregate that starts and stops them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
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
