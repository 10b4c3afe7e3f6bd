// Package client implements the resilient client core of Rechenwerk: a
// connection/request state machine that submits arithmetic tasks to a
// remote compute service and survives service restarts, network drops, and
// transient unavailability without losing accepted work.
//
// The machine processes one command at a time from its own ordered mailbox
// (submit, connect, failure notifications). Task requests run with a
// bounded timeout and are retried by resubmitting them into the same
// mailbox, so a retry during a disconnected window is buffered like any
// fresh submission instead of being dropped.
package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	rwlog "github.com/msto63/rechenwerk/foundation/core/log"
)

// DefaultTaskTimeout bounds a single task request
const DefaultTaskTimeout = 10 * time.Second

// DefaultMailboxSize is the capacity of the machine's command mailbox
const DefaultMailboxSize = 64

// Config holds the tunables of the state machine.
type Config struct {
	// TaskTimeout bounds each task request (default 10s)
	TaskTimeout time.Duration

	// ResolveTimeout bounds a resolver call. Zero means unbounded wait,
	// which is the default: a resolve is a single, rare, user-triggered
	// operation.
	ResolveTimeout time.Duration

	// RetryLimit caps how often a failed task is redispatched. Zero means
	// unlimited, which is the default: a permanently unreachable server
	// produces an unbounded retry loop.
	RetryLimit int

	// RetryBackoff is the delay before a failed task re-enters the command
	// stream. Zero means immediate resubmission, which is the default.
	RetryBackoff time.Duration

	// MailboxSize is the capacity of the command mailbox
	MailboxSize int
}

// withDefaults fills in zero values
func (c Config) withDefaults() Config {
	if c.TaskTimeout <= 0 {
		c.TaskTimeout = DefaultTaskTimeout
	}
	if c.MailboxSize <= 0 {
		c.MailboxSize = DefaultMailboxSize
	}
	return c
}

// Machine is the client state machine. All state transitions happen on a
// single event loop goroutine; Submit and Connect only post commands to
// the mailbox and never block on the network.
type Machine struct {
	cfg      Config
	resolver Resolver
	detector FailureDetector
	reporter Reporter
	logger   *rwlog.Logger

	mailbox  chan event
	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
	started  atomic.Bool

	// Owned by the event loop goroutine
	snap snapshot
	sub  Subscription

	// generation invalidates outcome handlers of abandoned incarnations.
	// It advances whenever the tracked server changes, so a late response
	// belonging to an earlier incarnation is recognized and discarded.
	generation atomic.Uint64

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Snapshot is a read-only view of the machine state for introspection.
type Snapshot struct {
	Phase   Phase
	Server  Endpoint
	Pending []Task
}

// inspectEvent requests a state snapshot; handled by the loop directly
type inspectEvent struct {
	reply chan Snapshot
}

func (inspectEvent) isEvent() {}

// New creates a machine in the Disconnected phase. The failure-detector
// handler is installed once here; the machine starts processing commands
// after Start.
func New(cfg Config, resolver Resolver, detector FailureDetector, reporter Reporter, logger *rwlog.Logger) *Machine {
	if logger == nil {
		logger = rwlog.New()
	}
	ctx, cancel := context.WithCancel(context.Background())
	cfg = cfg.withDefaults()
	return &Machine{
		cfg:      cfg,
		resolver: resolver,
		detector: detector,
		reporter: reporter,
		logger:   logger.WithName("client"),
		mailbox:  make(chan event, cfg.MailboxSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		snap:     snapshot{phase: PhaseDisconnected},
		baseCtx:  ctx,
		cancel:   cancel,
	}
}

// Start launches the event loop
func (m *Machine) Start() {
	if !m.started.CompareAndSwap(false, true) {
		return
	}
	go m.run()
}

// Stop terminates the event loop, abandons outstanding requests, and waits
// for their handlers to finish. Buffered tasks are lost, matching the
// semantics of process shutdown.
func (m *Machine) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	// Cancel before waiting: the loop goroutine may be parked inside an
	// unbounded resolver call that only returns on context cancellation.
	m.cancel()
	if m.started.Load() {
		<-m.doneCh
	}
	m.wg.Wait()
}

// Submit asks the machine to execute a task. Always succeeds: the task is
// dispatched immediately when Running, buffered otherwise.
func (m *Machine) Submit(task Task) {
	m.post(submitEvent{task: task})
}

// Connect asks the machine to connect to the given server, abandoning any
// current one.
func (m *Machine) Connect(host string, port uint16) {
	m.post(connectEvent{host: host, port: port})
}

// Snapshot returns the machine state after all previously posted commands
// were processed. It acts as a barrier and is mainly useful in tests.
func (m *Machine) Snapshot() Snapshot {
	reply := make(chan Snapshot, 1)
	m.post(inspectEvent{reply: reply})
	select {
	case s := <-reply:
		return s
	case <-m.doneCh:
		return Snapshot{Phase: m.snap.phase}
	}
}

// post delivers an event to the mailbox unless the machine is stopping
func (m *Machine) post(ev event) {
	select {
	case m.mailbox <- ev:
	case <-m.stopCh:
	}
}

// run is the event loop: one command at a time, in arrival order
func (m *Machine) run() {
	defer close(m.doneCh)
	defer m.cleanup()
	for {
		select {
		case <-m.stopCh:
			return
		case ev := <-m.mailbox:
			m.apply(ev)
		}
	}
}

// cleanup releases the subscription and the tracked endpoint
func (m *Machine) cleanup() {
	if m.sub != nil {
		m.sub.Cancel()
		m.sub = nil
	}
	if m.snap.server != nil {
		_ = m.snap.server.Close()
		m.snap.server = nil
	}
}

// apply runs one event through the transition function and executes the
// resulting effects
func (m *Machine) apply(ev event) {
	if ins, ok := ev.(inspectEvent); ok {
		ins.reply <- Snapshot{
			Phase:   m.snap.phase,
			Server:  m.snap.server,
			Pending: m.snap.queue.tasks(),
		}
		return
	}

	next, effects := transition(m.snap, ev)
	m.snap = next
	for _, eff := range effects {
		m.execute(eff)
	}
}

// execute carries out a single effect on the loop goroutine
func (m *Machine) execute(eff effect) {
	switch eff := eff.(type) {
	case resolveEffect:
		m.resolve(eff.host, eff.port)

	case dispatchEffect:
		m.dispatch(eff.endpoint, eff.task, eff.attempt)

	case subscribeEffect:
		m.generation.Add(1)
		m.sub = m.detector.Subscribe(eff.endpoint, func(ep Endpoint) {
			m.post(downEvent{endpoint: ep})
		})
		m.logger.Debug("monitoring server", rwlog.Fields{
			"endpoint": eff.endpoint.ID(),
			"target":   eff.endpoint.Target(),
		})

	case unsubscribeEffect:
		if m.sub != nil {
			m.sub.Cancel()
			m.sub = nil
		}
		m.generation.Add(1)

	case discardEffect:
		if err := eff.endpoint.Close(); err != nil {
			m.logger.Debug("closing abandoned endpoint failed", rwlog.Err(err))
		}

	case statusEffect:
		m.logger.Info(eff.message, rwlog.Fields{"phase": m.snap.phase})
		m.reporter.Status(eff.message)
	}
}

// resolve performs the resolver call synchronously on the loop goroutine.
// This is the one deliberate suspension point of the machine: commands
// arriving during the call queue up in the mailbox and are processed only
// after the outcome was applied, exactly as if the machine awaited a
// single pending reply.
func (m *Machine) resolve(host string, port uint16) {
	ctx := m.baseCtx
	if m.cfg.ResolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.ResolveTimeout)
		defer cancel()
	}

	m.logger.Info("resolving server", rwlog.Fields{"host": host, "port": port})
	ep, mismatch, err := m.resolver.Resolve(ctx, host, port)
	m.apply(resolvedEvent{
		host:     host,
		port:     port,
		endpoint: ep,
		mismatch: mismatch,
		err:      err,
	})
}

// dispatch issues one bounded-timeout request. The request is issued on
// the loop goroutine, preserving submission order; waiting for the
// outcome happens on a separate goroutine so the loop keeps handling
// commands.
func (m *Machine) dispatch(ep Endpoint, task Task, attempt int) {
	gen := m.generation.Load()
	ctx, cancel := context.WithTimeout(m.baseCtx, m.cfg.TaskTimeout)
	outcome := ep.Execute(ctx, task)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer cancel()
		m.await(task, attempt, gen, outcome)
	}()
}

// await handles the outcome of one outstanding request
func (m *Machine) await(task Task, attempt int, gen uint64, outcome <-chan ExecResult) {
	var res ExecResult
	select {
	case res = <-outcome:
	case <-m.stopCh:
		return
	}

	if res.Err == nil {
		if m.generation.Load() != gen {
			// The machine moved on while the request was in flight; the
			// late response must not reach the new incarnation.
			m.logger.Debug("discarding late response", rwlog.Fields{"task": task.String()})
			return
		}
		m.reporter.Result(task, res.Value)
		return
	}

	retry := attempt + 1
	if m.cfg.RetryLimit > 0 && retry > m.cfg.RetryLimit {
		m.logger.Warn("giving up on task", rwlog.Fields{
			"task":     task.String(),
			"attempts": attempt + 1,
		}, rwlog.Err(res.Err))
		m.reporter.Status("*** giving up on task " + task.String())
		return
	}

	m.logger.Debug("request failed, resubmitting task", rwlog.Fields{
		"task":    task.String(),
		"attempt": retry,
	}, rwlog.Err(res.Err))

	if m.cfg.RetryBackoff > 0 {
		timer := time.NewTimer(m.cfg.RetryBackoff)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-m.stopCh:
			return
		}
	}

	// Re-enter the command stream as a fresh submission: if the machine is
	// still Running the task is redispatched immediately, if it became
	// Disconnected in the interim the task is buffered instead.
	m.post(submitEvent{task: task, attempt: retry})
}
