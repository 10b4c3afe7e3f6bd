package server

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/msto63/rechenwerk/api/gen/gauss"
	"github.com/msto63/rechenwerk/internal/gauss/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = srv.service.Close() })
	return srv
}

func TestServer_Compute(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		op   pb.Operation
		lhs  int64
		rhs  int64
		want int64
	}{
		{"add", pb.Operation_OPERATION_ADD, 2, 3, 5},
		{"subtract", pb.Operation_OPERATION_SUBTRACT, 10, 4, 6},
		{"negative result", pb.Operation_OPERATION_SUBTRACT, 3, 8, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.Compute(context.Background(), &pb.ComputeRequest{
				Operation: tt.op,
				Lhs:       tt.lhs,
				Rhs:       tt.rhs,
			})
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if resp.GetValue() != tt.want {
				t.Errorf("Compute() = %d, want %d", resp.GetValue(), tt.want)
			}
		})
	}
}

func TestServer_Compute_UnspecifiedOperation(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.Compute(context.Background(), &pb.ComputeRequest{
		Operation: pb.Operation_OPERATION_UNSPECIFIED,
		Lhs:       1,
		Rhs:       2,
	})
	if err == nil {
		t.Fatal("Compute() with unspecified operation did not fail")
	}
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("status code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestServer_Describe(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Describe(context.Background(), &pb.DescribeRequest{})
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if resp.GetService() != service.ServiceName {
		t.Errorf("Service = %v, want %v", resp.GetService(), service.ServiceName)
	}
	if resp.GetVersion() == "" {
		t.Error("Version is empty")
	}

	caps := resp.GetCapabilities()
	if len(caps) != 2 || caps[0] != "add" || caps[1] != "subtract" {
		t.Errorf("Capabilities = %v, want [add subtract]", caps)
	}
}
