package transport

import (
	"context"

	"google.golang.org/grpc/connectivity"

	"github.com/msto63/rechenwerk/internal/client"
	"github.com/msto63/rechenwerk/pkg/core/logging"
)

// Detector reports endpoints whose connection left the usable states. It
// watches the gRPC connectivity state of each subscribed endpoint on a
// dedicated goroutine.
type Detector struct {
	logger *logging.Logger
}

// NewDetector creates a connectivity-based failure detector.
func NewDetector() *Detector {
	return &Detector{logger: logging.New("detector")}
}

// Subscribe starts watching the endpoint. The down callback fires at most
// once; canceling the subscription stops the watch without firing.
func (d *Detector) Subscribe(ep client.Endpoint, down func(client.Endpoint)) client.Subscription {
	gep, ok := ep.(*grpcEndpoint)
	if !ok {
		// Not one of ours; nothing to watch
		return noopSubscription{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	go d.watch(ctx, gep, down)
	return &watchSubscription{cancel: cancel}
}

// watch blocks on connectivity state changes until the connection fails or
// the subscription is canceled
func (d *Detector) watch(ctx context.Context, ep *grpcEndpoint, down func(client.Endpoint)) {
	for {
		state := ep.conn.GetState()
		if state == connectivity.Idle {
			// An idle connection never discovers a dead server on its
			// own; trigger a connection attempt so the watch makes
			// progress
			ep.conn.Connect()
			state = ep.conn.GetState()
		}
		if state == connectivity.TransientFailure || state == connectivity.Shutdown {
			d.logger.Debug("endpoint down",
				"endpoint", ep.ID(),
				"target", ep.Target(),
				"state", state.String(),
			)
			down(ep)
			return
		}
		if !ep.conn.WaitForStateChange(ctx, state) {
			// Subscription canceled
			return
		}
	}
}

type watchSubscription struct {
	cancel context.CancelFunc
}

func (s *watchSubscription) Cancel() { s.cancel() }

type noopSubscription struct{}

func (noopSubscription) Cancel() {}
