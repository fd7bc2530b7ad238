// Package probe runs the dependency checks behind the readiness endpoints.
package probe

import (
	"context"
	"fmt"
)

// Check is a named dependency ping, e.g. the database or the cache.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// CheckError reports the first failed check.
type CheckError struct {
	Name string
	Err  error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("check %q failed: %v", e.Name, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// Run pings checks in order and returns a *CheckError for the first failure.
func Run(ctx context.Context, checks []Check) error {
	for _, check := range checks {
		if err := check.Ping(ctx); err != nil {
			return &CheckError{Name: check.Name, Err: err}
		}
	}
	return nil
}
