package transport

import (
	"reflect"
	"testing"

	pb "github.com/msto63/rechenwerk/api/gen/gauss"
	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
	"github.com/msto63/rechenwerk/internal/client"
)

func TestMissingCapabilities(t *testing.T) {
	tests := []struct {
		name       string
		expect     []string
		advertised []string
		want       []string
	}{
		{
			name:       "full match",
			expect:     []string{"add", "subtract"},
			advertised: []string{"add", "subtract"},
			want:       nil,
		},
		{
			name:       "extra capabilities are fine",
			expect:     []string{"add", "subtract"},
			advertised: []string{"add", "subtract", "multiply"},
			want:       nil,
		},
		{
			name:       "one missing",
			expect:     []string{"add", "subtract"},
			advertised: []string{"add"},
			want:       []string{"subtract"},
		},
		{
			name:       "all missing",
			expect:     []string{"add", "subtract"},
			advertised: nil,
			want:       []string{"add", "subtract"},
		},
		{
			name:       "order follows expectation",
			expect:     []string{"subtract", "add"},
			advertised: []string{"multiply"},
			want:       []string{"subtract", "add"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := missingCapabilities(tt.expect, tt.advertised)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("missingCapabilities() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewResolver_DefaultCapabilities(t *testing.T) {
	r := NewResolver(nil)
	if !reflect.DeepEqual(r.expect, DefaultCapabilities) {
		t.Errorf("expect = %v, want %v", r.expect, DefaultCapabilities)
	}

	r = NewResolver([]string{"add"})
	if !reflect.DeepEqual(r.expect, []string{"add"}) {
		t.Errorf("expect = %v, want [add]", r.expect)
	}
}

func TestToProtoOperation(t *testing.T) {
	tests := []struct {
		op      client.Operation
		want    pb.Operation
		wantErr bool
	}{
		{client.OpAdd, pb.Operation_OPERATION_ADD, false},
		{client.OpSubtract, pb.Operation_OPERATION_SUBTRACT, false},
		{client.Operation(0), pb.Operation_OPERATION_UNSPECIFIED, true},
	}

	for _, tt := range tests {
		got, err := toProtoOperation(tt.op)
		if (err != nil) != tt.wantErr {
			t.Errorf("toProtoOperation(%v) error = %v, wantErr %v", tt.op, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("toProtoOperation(%v) = %v, want %v", tt.op, got, tt.want)
		}
		if err != nil && !rwerror.HasCode(err, rwerror.CodeInvalidOperation) {
			t.Errorf("error code = %v, want INVALID_OPERATION", rwerror.GetCode(err))
		}
	}
}
