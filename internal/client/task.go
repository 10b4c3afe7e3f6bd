package client

import (
	"fmt"
)

// Operation identifies an arithmetic operation supported by the compute
// service.
type Operation int

const (
	// OpAdd adds the two operands
	OpAdd Operation = iota + 1

	// OpSubtract subtracts the right operand from the left one
	OpSubtract
)

// String returns the operator symbol
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	default:
		return "?"
	}
}

// Valid reports whether the operation is one of the supported operations
func (o Operation) Valid() bool {
	return o == OpAdd || o == OpSubtract
}

// Task is one arithmetic operation with two integer operands awaiting
// execution by the remote service. Tasks are immutable values.
type Task struct {
	Operation Operation
	Lhs       int64
	Rhs       int64
}

// String renders the task as "lhs op rhs"
func (t Task) String() string {
	return fmt.Sprintf("%d %s %d", t.Lhs, t.Operation, t.Rhs)
}

// pending is a buffered submission. The attempt counter survives buffering
// so that a bounded-retry configuration keeps counting across a
// disconnected window.
type pending struct {
	task    Task
	attempt int
}

// taskQueue is a passive ordered buffer of not-yet-sent tasks. It is owned
// exclusively by the state machine and has no behavior of its own beyond
// FIFO append and drain.
type taskQueue []pending

// push appends a submission to the end of the queue
func (q taskQueue) push(p pending) taskQueue {
	return append(q, p)
}

// tasks returns the buffered tasks in submission order
func (q taskQueue) tasks() []Task {
	out := make([]Task, len(q))
	for i, p := range q {
		out[i] = p.task
	}
	return out
}
