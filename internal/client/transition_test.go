package client

import (
	"context"
	"errors"
	"testing"
)

// stubEndpoint is a minimal Endpoint for transition tests; Execute is never
// called because the transition function only emits effects.
type stubEndpoint struct {
	id     string
	target string
}

func (e *stubEndpoint) ID() string     { return e.id }
func (e *stubEndpoint) Target() string { return e.target }
func (e *stubEndpoint) Close() error   { return nil }

func (e *stubEndpoint) Execute(ctx context.Context, task Task) <-chan ExecResult {
	ch := make(chan ExecResult, 1)
	ch <- ExecResult{}
	return ch
}

func TestTransition_SubmitBuffersWhileDisconnected(t *testing.T) {
	s := snapshot{phase: PhaseDisconnected}

	s, effects := transition(s, submitEvent{task: Task{Operation: OpAdd, Lhs: 1, Rhs: 2}})
	if len(effects) != 0 {
		t.Errorf("effects = %d, want 0", len(effects))
	}
	if s.phase != PhaseDisconnected {
		t.Errorf("phase = %v, want disconnected", s.phase)
	}
	if len(s.queue) != 1 {
		t.Fatalf("queue length = %d, want 1", len(s.queue))
	}
	if got := s.queue[0].task.String(); got != "1 + 2" {
		t.Errorf("buffered task = %q, want %q", got, "1 + 2")
	}
}

func TestTransition_SubmitBuffersWhileConnecting(t *testing.T) {
	s := snapshot{phase: PhaseConnecting}

	s, effects := transition(s, submitEvent{task: Task{Operation: OpSubtract, Lhs: 10, Rhs: 4}})
	if len(effects) != 0 {
		t.Errorf("effects = %d, want 0", len(effects))
	}
	if len(s.queue) != 1 {
		t.Errorf("queue length = %d, want 1", len(s.queue))
	}
}

func TestTransition_SubmitDispatchesWhileRunning(t *testing.T) {
	ep := &stubEndpoint{id: "ep-1"}
	s := snapshot{phase: PhaseRunning, server: ep}

	s, effects := transition(s, submitEvent{task: Task{Operation: OpAdd, Lhs: 3, Rhs: 4}, attempt: 2})
	if len(s.queue) != 0 {
		t.Errorf("queue length = %d, want 0", len(s.queue))
	}
	if len(effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(effects))
	}
	d, ok := effects[0].(dispatchEffect)
	if !ok {
		t.Fatalf("effect = %T, want dispatchEffect", effects[0])
	}
	if d.endpoint != Endpoint(ep) {
		t.Error("dispatch endpoint is not the current server")
	}
	if d.attempt != 2 {
		t.Errorf("attempt = %d, want 2", d.attempt)
	}
}

func TestTransition_ConnectStartsResolve(t *testing.T) {
	s := snapshot{phase: PhaseDisconnected}

	s, effects := transition(s, connectEvent{host: "localhost", port: 4242})
	if s.phase != PhaseConnecting {
		t.Errorf("phase = %v, want connecting", s.phase)
	}
	if len(effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(effects))
	}
	r, ok := effects[0].(resolveEffect)
	if !ok {
		t.Fatalf("effect = %T, want resolveEffect", effects[0])
	}
	if r.host != "localhost" || r.port != 4242 {
		t.Errorf("resolve target = %s:%d, want localhost:4242", r.host, r.port)
	}
}

func TestTransition_ConnectAbandonsCurrentServer(t *testing.T) {
	old := &stubEndpoint{id: "ep-old"}
	s := snapshot{phase: PhaseRunning, server: old}

	s, effects := transition(s, connectEvent{host: "otherhost", port: 4243})
	if s.server != nil {
		t.Error("server still set after reconnect command")
	}
	if s.phase != PhaseConnecting {
		t.Errorf("phase = %v, want connecting", s.phase)
	}
	if len(effects) != 3 {
		t.Fatalf("effects = %d, want 3", len(effects))
	}
	if _, ok := effects[0].(unsubscribeEffect); !ok {
		t.Errorf("effects[0] = %T, want unsubscribeEffect", effects[0])
	}
	d, ok := effects[1].(discardEffect)
	if !ok {
		t.Fatalf("effects[1] = %T, want discardEffect", effects[1])
	}
	if d.endpoint.ID() != "ep-old" {
		t.Errorf("discarded endpoint = %v, want ep-old", d.endpoint.ID())
	}
	if _, ok := effects[2].(resolveEffect); !ok {
		t.Errorf("effects[2] = %T, want resolveEffect", effects[2])
	}
}

func TestTransition_ResolveErrorReturnsToDisconnected(t *testing.T) {
	s := snapshot{phase: PhaseConnecting}

	s, effects := transition(s, resolvedEvent{
		host: "nowhere",
		port: 4242,
		err:  errors.New("connection refused"),
	})
	if s.phase != PhaseDisconnected {
		t.Errorf("phase = %v, want disconnected", s.phase)
	}
	if len(effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(effects))
	}
	st, ok := effects[0].(statusEffect)
	if !ok {
		t.Fatalf("effect = %T, want statusEffect", effects[0])
	}
	want := `*** cannot connect to "nowhere":4242 => connection refused`
	if st.message != want {
		t.Errorf("message = %q, want %q", st.message, want)
	}
}

func TestTransition_ResolveMismatchDiscardsHandle(t *testing.T) {
	ep := &stubEndpoint{id: "ep-wrong"}
	s := snapshot{phase: PhaseConnecting, queue: taskQueue{{task: Task{Operation: OpAdd, Lhs: 1, Rhs: 1}}}}

	s, effects := transition(s, resolvedEvent{
		host:     "localhost",
		port:     4242,
		endpoint: ep,
		mismatch: []string{"subtract"},
	})
	if s.phase != PhaseDisconnected {
		t.Errorf("phase = %v, want disconnected", s.phase)
	}
	if s.server != nil {
		t.Error("mismatching endpoint was adopted as server")
	}
	if len(s.queue) != 1 {
		t.Errorf("queue length = %d, want 1 (buffer must survive a failed connect)", len(s.queue))
	}
	if len(effects) != 2 {
		t.Fatalf("effects = %d, want 2", len(effects))
	}
	if _, ok := effects[0].(statusEffect); !ok {
		t.Errorf("effects[0] = %T, want statusEffect", effects[0])
	}
	d, ok := effects[1].(discardEffect)
	if !ok {
		t.Fatalf("effects[1] = %T, want discardEffect", effects[1])
	}
	if d.endpoint.ID() != "ep-wrong" {
		t.Errorf("discarded endpoint = %v, want ep-wrong", d.endpoint.ID())
	}
}

func TestTransition_ResolveSuccessFlushesQueueInOrder(t *testing.T) {
	ep := &stubEndpoint{id: "ep-1"}
	s := snapshot{
		phase: PhaseConnecting,
		queue: taskQueue{
			{task: Task{Operation: OpAdd, Lhs: 1, Rhs: 2}},
			{task: Task{Operation: OpSubtract, Lhs: 9, Rhs: 3}, attempt: 1},
			{task: Task{Operation: OpAdd, Lhs: 5, Rhs: 5}},
		},
	}

	s, effects := transition(s, resolvedEvent{host: "localhost", port: 4242, endpoint: ep})
	if s.phase != PhaseRunning {
		t.Errorf("phase = %v, want running", s.phase)
	}
	if s.server == nil || s.server.ID() != "ep-1" {
		t.Error("resolved endpoint was not adopted as server")
	}
	if len(s.queue) != 0 {
		t.Errorf("queue length = %d, want 0 after flush", len(s.queue))
	}
	if len(effects) != 5 {
		t.Fatalf("effects = %d, want 5", len(effects))
	}
	if _, ok := effects[0].(subscribeEffect); !ok {
		t.Errorf("effects[0] = %T, want subscribeEffect", effects[0])
	}
	if _, ok := effects[1].(statusEffect); !ok {
		t.Errorf("effects[1] = %T, want statusEffect", effects[1])
	}
	wantOrder := []string{"1 + 2", "9 - 3", "5 + 5"}
	for i, want := range wantOrder {
		d, ok := effects[2+i].(dispatchEffect)
		if !ok {
			t.Fatalf("effects[%d] = %T, want dispatchEffect", 2+i, effects[2+i])
		}
		if got := d.task.String(); got != want {
			t.Errorf("dispatch order[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestTransition_ResolveOutcomeIgnoredOutsideConnecting(t *testing.T) {
	ep := &stubEndpoint{id: "ep-late"}
	s := snapshot{phase: PhaseDisconnected}

	next, effects := transition(s, resolvedEvent{endpoint: ep})
	if len(effects) != 0 {
		t.Errorf("effects = %d, want 0", len(effects))
	}
	if next.server != nil {
		t.Error("stray resolve outcome changed the server")
	}
}

func TestTransition_DownForCurrentServer(t *testing.T) {
	ep := &stubEndpoint{id: "ep-1"}
	s := snapshot{phase: PhaseRunning, server: ep}

	s, effects := transition(s, downEvent{endpoint: ep})
	if s.phase != PhaseDisconnected {
		t.Errorf("phase = %v, want disconnected", s.phase)
	}
	if s.server != nil {
		t.Error("server still set after down notification")
	}
	if len(effects) != 3 {
		t.Fatalf("effects = %d, want 3", len(effects))
	}
	if _, ok := effects[0].(unsubscribeEffect); !ok {
		t.Errorf("effects[0] = %T, want unsubscribeEffect", effects[0])
	}
	if _, ok := effects[1].(discardEffect); !ok {
		t.Errorf("effects[1] = %T, want discardEffect", effects[1])
	}
	st, ok := effects[2].(statusEffect)
	if !ok {
		t.Fatalf("effects[2] = %T, want statusEffect", effects[2])
	}
	if st.message != "*** lost connection to server" {
		t.Errorf("message = %q", st.message)
	}
}

func TestTransition_StaleDownIsIgnored(t *testing.T) {
	current := &stubEndpoint{id: "ep-new"}
	stale := &stubEndpoint{id: "ep-old"}
	s := snapshot{phase: PhaseRunning, server: current}

	next, effects := transition(s, downEvent{endpoint: stale})
	if len(effects) != 0 {
		t.Errorf("effects = %d, want 0", len(effects))
	}
	if next.phase != PhaseRunning {
		t.Errorf("phase = %v, want running", next.phase)
	}
	if next.server == nil || next.server.ID() != "ep-new" {
		t.Error("stale notification displaced the current server")
	}
}

func TestTransition_DownWhileDisconnected(t *testing.T) {
	s := snapshot{phase: PhaseDisconnected}

	next, effects := transition(s, downEvent{endpoint: &stubEndpoint{id: "ep-old"}})
	if len(effects) != 0 {
		t.Errorf("effects = %d, want 0", len(effects))
	}
	if next.phase != PhaseDisconnected {
		t.Errorf("phase = %v, want disconnected", next.phase)
	}
}
