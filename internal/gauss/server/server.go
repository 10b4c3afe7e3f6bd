package server

import (
	"context"
	"time"

	pb "github.com/msto63/rechenwerk/api/gen/gauss"
	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
	"github.com/msto63/rechenwerk/internal/gauss/service"
	coreGrpc "github.com/msto63/rechenwerk/pkg/core/grpc"
	"github.com/msto63/rechenwerk/pkg/core/health"
	"github.com/msto63/rechenwerk/pkg/core/logging"
)

// Server is the gauss gRPC server
type Server struct {
	pb.UnimplementedGaussServiceServer
	service   *service.Service
	grpc      *coreGrpc.Server
	health    *health.Registry
	logger    *logging.Logger
	config    Config
	startTime time.Time
}

// Config holds server configuration
type Config struct {
	Host    string
	Port    int
	Service service.Config
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:    "0.0.0.0",
		Port:    4242,
		Service: service.DefaultConfig(),
	}
}

// New creates a new gauss server
func New(cfg Config) (*Server, error) {
	logger := logging.New("gauss-server")

	svc, err := service.NewService(cfg.Service)
	if err != nil {
		return nil, rwerror.Wrap(err, "failed to create service").
			WithCode(rwerror.CodeServiceInitialization).
			WithOperation("server.New")
	}

	grpcCfg := coreGrpc.DefaultServerConfig()
	grpcCfg.Host = cfg.Host
	grpcCfg.Port = cfg.Port

	grpcServer := coreGrpc.NewServer(grpcCfg)

	healthRegistry := health.NewRegistry(service.ServiceName, svc.Version())
	healthRegistry.RegisterFunc("service", func(ctx context.Context) health.CheckResult {
		return health.CheckResult{
			Name:    "service",
			Status:  health.StatusHealthy,
			Message: "gauss computation service is operational",
		}
	})
	if cfg.Service.AuditPath != "" {
		healthRegistry.RegisterFunc("audit", func(ctx context.Context) health.CheckResult {
			if _, err := svc.AuditStats(ctx); err != nil {
				return health.CheckResult{
					Name:    "audit",
					Status:  health.StatusDegraded,
					Message: err.Error(),
				}
			}
			return health.CheckResult{
				Name:    "audit",
				Status:  health.StatusHealthy,
				Message: "audit store reachable",
			}
		})
	}

	server := &Server{
		service:   svc,
		grpc:      grpcServer,
		health:    healthRegistry,
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}

	// Register gRPC service
	pb.RegisterGaussServiceServer(grpcServer.GRPCServer(), server)

	return server, nil
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("starting gauss server",
		"host", s.config.Host,
		"port", s.config.Port,
	)
	return s.grpc.Start()
}

// StartAsync starts the server in a goroutine
func (s *Server) StartAsync() error {
	s.logger.Info("starting gauss server",
		"host", s.config.Host,
		"port", s.config.Port,
	)
	return s.grpc.StartAsync()
}

// Stop gracefully stops the server
func (s *Server) Stop() {
	s.logger.Info("stopping gauss server")
	s.grpc.Stop()
	if err := s.service.Close(); err != nil {
		s.logger.Error("failed to close service", "error", err)
	}
}

// StopWithTimeout stops the server, forcing after the context expires
func (s *Server) StopWithTimeout(ctx context.Context) {
	s.logger.Info("stopping gauss server")
	s.grpc.StopWithTimeout(ctx)
	if err := s.service.Close(); err != nil {
		s.logger.Error("failed to close service", "error", err)
	}
}

// Address returns the server address
func (s *Server) Address() string {
	return s.grpc.Address()
}

// Health returns the health registry
func (s *Server) Health() *health.Registry {
	return s.health
}
