// Package transport binds the client state machine to gRPC: it resolves
// addresses into live endpoint handles, executes task requests against the
// gauss service, and watches connections for failures.
package transport

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/msto63/rechenwerk/api/gen/gauss"
	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
	"github.com/msto63/rechenwerk/internal/client"
)

// grpcEndpoint is one client connection to a gauss instance. Every resolve
// produces a fresh handle with a fresh ID, so two connects to the same
// address are distinguishable.
type grpcEndpoint struct {
	id     string
	target string
	conn   *grpc.ClientConn
	client pb.GaussServiceClient
}

func newEndpoint(conn *grpc.ClientConn, target string) *grpcEndpoint {
	return &grpcEndpoint{
		id:     uuid.New().String(),
		target: target,
		conn:   conn,
		client: pb.NewGaussServiceClient(conn),
	}
}

func (e *grpcEndpoint) ID() string     { return e.id }
func (e *grpcEndpoint) Target() string { return e.target }

func (e *grpcEndpoint) Close() error {
	return e.conn.Close()
}

// Execute issues one Compute RPC. The call returns immediately; the
// outcome arrives on the returned channel when the RPC finishes or ctx
// expires.
func (e *grpcEndpoint) Execute(ctx context.Context, task client.Task) <-chan client.ExecResult {
	ch := make(chan client.ExecResult, 1)

	op, err := toProtoOperation(task.Operation)
	if err != nil {
		ch <- client.ExecResult{Err: err}
		return ch
	}

	go func() {
		resp, err := e.client.Compute(ctx, &pb.ComputeRequest{
			Operation: op,
			Lhs:       task.Lhs,
			Rhs:       task.Rhs,
		})
		if err != nil {
			ch <- client.ExecResult{Err: wrapRPCError(err, task)}
			return
		}
		ch <- client.ExecResult{Value: resp.GetValue()}
	}()
	return ch
}

// toProtoOperation maps a task operation onto the wire enum
func toProtoOperation(op client.Operation) (pb.Operation, error) {
	switch op {
	case client.OpAdd:
		return pb.Operation_OPERATION_ADD, nil
	case client.OpSubtract:
		return pb.Operation_OPERATION_SUBTRACT, nil
	default:
		return pb.Operation_OPERATION_UNSPECIFIED,
			rwerror.Newf("unsupported operation %q", op.String()).
				WithCode(rwerror.CodeInvalidOperation)
	}
}

// wrapRPCError classifies an RPC failure so the retry logic can tell
// timeouts from other transport errors
func wrapRPCError(err error, task client.Task) error {
	code := rwerror.CodeRequestFailed
	if status.Code(err) == codes.DeadlineExceeded {
		code = rwerror.CodeRequestTimeout
	}
	return rwerror.Wrapf(err, "task %s failed", task.String()).
		WithCode(code).
		WithOperation("Compute")
}
