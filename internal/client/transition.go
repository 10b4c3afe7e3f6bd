package client

import (
	"fmt"
)

// Phase is the explicit state tag of the client state machine.
type Phase int

const (
	// PhaseDisconnected buffers submissions and waits for a connect command
	PhaseDisconnected Phase = iota

	// PhaseConnecting has exactly one resolver call in flight
	PhaseConnecting

	// PhaseRunning dispatches submissions to the current server
	PhaseRunning
)

// String returns the lower-case phase name
func (p Phase) String() string {
	switch p {
	case PhaseDisconnected:
		return "disconnected"
	case PhaseConnecting:
		return "connecting"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// snapshot is the complete mutable state of the machine. It is owned by the
// event loop goroutine; the pure transition function receives and returns
// it by value.
type snapshot struct {
	phase  Phase
	server Endpoint
	queue  taskQueue
}

// event is one command or notification processed by the machine.
type event interface {
	isEvent()
}

// submitEvent asks for a task to be executed. attempt counts how often the
// task has already been dispatched and failed.
type submitEvent struct {
	task    Task
	attempt int
}

// connectEvent asks the machine to (re)connect to a server.
type connectEvent struct {
	host string
	port uint16
}

// resolvedEvent carries the outcome of a resolver call. It is produced by
// the event loop itself, never posted from outside.
type resolvedEvent struct {
	host     string
	port     uint16
	endpoint Endpoint
	mismatch []string
	err      error
}

// downEvent is a failure-detector notification for an endpoint.
type downEvent struct {
	endpoint Endpoint
}

func (submitEvent) isEvent()   {}
func (connectEvent) isEvent()  {}
func (resolvedEvent) isEvent() {}
func (downEvent) isEvent()     {}

// effect is an action the engine carries out after a transition. Effects
// are returned in execution order.
type effect interface {
	isEffect()
}

// resolveEffect starts a resolver call for the given address
type resolveEffect struct {
	host string
	port uint16
}

// dispatchEffect issues one bounded-timeout request against an endpoint
type dispatchEffect struct {
	task     Task
	attempt  int
	endpoint Endpoint
}

// subscribeEffect registers the endpoint with the failure detector
type subscribeEffect struct {
	endpoint Endpoint
}

// unsubscribeEffect cancels the current failure-detector subscription
type unsubscribeEffect struct{}

// discardEffect closes an endpoint handle that is no longer tracked
type discardEffect struct {
	endpoint Endpoint
}

// statusEffect emits a user-visible status message
type statusEffect struct {
	message string
}

func (resolveEffect) isEffect()     {}
func (dispatchEffect) isEffect()    {}
func (subscribeEffect) isEffect()   {}
func (unsubscribeEffect) isEffect() {}
func (discardEffect) isEffect()     {}
func (statusEffect) isEffect()      {}

// transition is the total state transition function: for every state and
// event it returns the next state and the effects to execute. It has no
// side effects and can be tested without a live scheduler.
func transition(s snapshot, ev event) (snapshot, []effect) {
	switch ev := ev.(type) {
	case submitEvent:
		if s.phase == PhaseRunning {
			return s, []effect{dispatchEffect{
				task:     ev.task,
				attempt:  ev.attempt,
				endpoint: s.server,
			}}
		}
		// Disconnected and Connecting buffer in submission order
		s.queue = s.queue.push(pending{task: ev.task, attempt: ev.attempt})
		return s, nil

	case connectEvent:
		var effects []effect
		if s.server != nil {
			// The old subscription becomes stale; a notification for the
			// abandoned endpoint must never reach the new incarnation.
			effects = append(effects,
				unsubscribeEffect{},
				discardEffect{endpoint: s.server},
			)
		}
		s.server = nil
		s.phase = PhaseConnecting
		effects = append(effects, resolveEffect{host: ev.host, port: ev.port})
		return s, effects

	case resolvedEvent:
		if s.phase != PhaseConnecting {
			// A resolve outcome can only belong to the connect attempt the
			// loop is suspended on; anything else is dropped.
			return s, nil
		}
		if ev.err != nil {
			s.phase = PhaseDisconnected
			return s, []effect{statusEffect{message: fmt.Sprintf(
				"*** cannot connect to %q:%d => %v", ev.host, ev.port, ev.err)}}
		}
		if ev.endpoint == nil {
			s.phase = PhaseDisconnected
			return s, []effect{statusEffect{message: fmt.Sprintf(
				"*** no server found at %q:%d", ev.host, ev.port)}}
		}
		if len(ev.mismatch) > 0 {
			s.phase = PhaseDisconnected
			return s, []effect{
				statusEffect{message: fmt.Sprintf(
					"*** service at %q:%d does not provide the expected interface (missing: %v)",
					ev.host, ev.port, ev.mismatch)},
				discardEffect{endpoint: ev.endpoint},
			}
		}

		s.server = ev.endpoint
		s.phase = PhaseRunning
		effects := []effect{
			subscribeEffect{endpoint: ev.endpoint},
			statusEffect{message: "*** successfully connected to server"},
		}
		// Flush the queue in submission order, then clear it
		for _, p := range s.queue {
			effects = append(effects, dispatchEffect{
				task:     p.task,
				attempt:  p.attempt,
				endpoint: ev.endpoint,
			})
		}
		s.queue = nil
		return s, effects

	case downEvent:
		if s.server == nil || ev.endpoint == nil || ev.endpoint.ID() != s.server.ID() {
			// Stale notification from a previously abandoned server
			return s, nil
		}
		old := s.server
		s.server = nil
		s.phase = PhaseDisconnected
		return s, []effect{
			unsubscribeEffect{},
			discardEffect{endpoint: old},
			statusEffect{message: "*** lost connection to server"},
		}

	default:
		return s, nil
	}
}
