package transport

import (
	"context"
	"net"
	"strconv"

	"google.golang.org/grpc"

	pb "github.com/msto63/rechenwerk/api/gen/gauss"
	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
	"github.com/msto63/rechenwerk/internal/client"
	coregrpc "github.com/msto63/rechenwerk/pkg/core/grpc"
	"github.com/msto63/rechenwerk/pkg/core/logging"
)

// DefaultCapabilities lists the operations the client expects a gauss
// instance to provide.
var DefaultCapabilities = []string{"add", "subtract"}

// Resolver dials gauss instances and verifies their advertised interface.
type Resolver struct {
	expect []string
	logger *logging.Logger
}

// NewResolver creates a resolver that checks for the given capabilities.
// A nil or empty expectation defaults to DefaultCapabilities.
func NewResolver(expect []string) *Resolver {
	if len(expect) == 0 {
		expect = DefaultCapabilities
	}
	return &Resolver{
		expect: expect,
		logger: logging.New("resolver"),
	}
}

// Resolve dials host:port and interrogates the service with a Describe
// RPC. The call waits until the connection is ready or ctx is done, so an
// unbounded ctx gives an unbounded connect attempt. A reachable service
// with a different interface is returned together with the missing
// capabilities; the caller decides whether to keep the handle.
func (r *Resolver) Resolve(ctx context.Context, host string, port uint16) (client.Endpoint, []string, error) {
	target := net.JoinHostPort(host, strconv.Itoa(int(port)))

	conn, err := coregrpc.Dial(coregrpc.DefaultClientConfig(target))
	if err != nil {
		return nil, nil, rwerror.Wrapf(err, "cannot dial %s", target).
			WithCode(rwerror.CodeConnectionFailed)
	}

	c := pb.NewGaussServiceClient(conn)
	resp, err := c.Describe(ctx, &pb.DescribeRequest{}, grpc.WaitForReady(true))
	if err != nil {
		_ = conn.Close()
		return nil, nil, rwerror.Wrapf(err, "cannot resolve service at %s", target).
			WithCode(rwerror.CodeResolveFailed)
	}

	missing := missingCapabilities(r.expect, resp.GetCapabilities())
	if len(missing) > 0 {
		r.logger.Warn("service interface mismatch",
			"target", target,
			"service", resp.GetService(),
			"missing", missing,
		)
	} else {
		r.logger.Info("resolved service",
			"target", target,
			"service", resp.GetService(),
			"version", resp.GetVersion(),
		)
	}

	return newEndpoint(conn, target), missing, nil
}

// missingCapabilities returns the expected capabilities the service does
// not advertise, in expectation order
func missingCapabilities(expect, advertised []string) []string {
	have := make(map[string]bool, len(advertised))
	for _, c := range advertised {
		have[c] = true
	}
	var missing []string
	for _, c := range expect {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}
