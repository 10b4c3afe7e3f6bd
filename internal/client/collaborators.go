package client

import (
	"context"
)

// ExecResult is the outcome of one remote task request.
type ExecResult struct {
	Value int64
	Err   error
}

// Endpoint is an opaque handle to a specific remote service instance. Two
// handles refer to the same instance exactly when their IDs are equal; a
// handle stays comparable after the instance became unreachable.
type Endpoint interface {
	// ID returns a unique identifier for this handle
	ID() string

	// Target returns the "host:port" the handle points at
	Target() string

	// Execute issues the task immediately and delivers the outcome on the
	// returned channel. The call itself must not block; cancellation and
	// deadlines are taken from ctx.
	Execute(ctx context.Context, task Task) <-chan ExecResult

	// Close releases the resources behind the handle
	Close() error
}

// Resolver turns a (host, port) pair into a live endpoint handle. A
// successful resolve may still report a non-empty capability mismatch set,
// meaning the address answered with a service whose advertised interface
// differs from what the client expects; the caller must then discard the
// handle. The call blocks until the resolver answers or ctx is done.
type Resolver interface {
	Resolve(ctx context.Context, host string, port uint16) (Endpoint, []string, error)
}

// Subscription is an active failure-detector registration. Cancel
// invalidates it; a canceled subscription delivers no further
// notifications.
type Subscription interface {
	Cancel()
}

// FailureDetector reports when a subscribed endpoint becomes unreachable.
// The down callback is invoked at most once per subscription, from an
// arbitrary goroutine.
type FailureDetector interface {
	Subscribe(ep Endpoint, down func(Endpoint)) Subscription
}

// Reporter receives the user-visible output of the state machine.
type Reporter interface {
	// Result reports one successfully computed task
	Result(task Task, value int64)

	// Status reports connection lifecycle messages
	Status(message string)
}
