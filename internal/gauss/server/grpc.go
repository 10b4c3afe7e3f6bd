package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/msto63/rechenwerk/api/gen/gauss"
	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
	"github.com/msto63/rechenwerk/internal/gauss/service"
)

// Ensure Server implements GaussServiceServer
var _ pb.GaussServiceServer = (*Server)(nil)

// Compute implements GaussServiceServer.Compute
func (s *Server) Compute(ctx context.Context, req *pb.ComputeRequest) (*pb.ComputeResponse, error) {
	operation, err := operationName(req.GetOperation())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.service.Compute(ctx, operation, req.GetLhs(), req.GetRhs())
	if err != nil {
		if rwerror.HasCode(err, rwerror.CodeInvalidOperation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error("computation failed", "error", err)
		return nil, status.Error(codes.Internal, "computation failed")
	}

	return &pb.ComputeResponse{Value: result}, nil
}

// Describe implements GaussServiceServer.Describe
func (s *Server) Describe(ctx context.Context, req *pb.DescribeRequest) (*pb.DescribeResponse, error) {
	return &pb.DescribeResponse{
		Service:      service.ServiceName,
		Version:      s.service.Version(),
		Capabilities: s.service.Capabilities(),
	}, nil
}

// operationName maps the wire enum onto a service operation
func operationName(op pb.Operation) (string, error) {
	switch op {
	case pb.Operation_OPERATION_ADD:
		return service.OperationAdd, nil
	case pb.Operation_OPERATION_SUBTRACT:
		return service.OperationSubtract, nil
	default:
		return "", rwerror.Newf("operation %d is not supported", op).
			WithCode(rwerror.CodeInvalidOperation)
	}
}
