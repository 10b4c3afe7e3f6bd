// Package service implements the gauss computation service: a stateless
// arithmetic engine with an optional sqlite-backed audit trail.
package service

import (
	"context"
	"sync/atomic"
	"time"

	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
	"github.com/msto63/rechenwerk/internal/gauss/store"
	"github.com/msto63/rechenwerk/pkg/core/cache"
	coregrpc "github.com/msto63/rechenwerk/pkg/core/grpc"
	"github.com/msto63/rechenwerk/pkg/core/logging"
	"github.com/msto63/rechenwerk/pkg/core/version"
)

// statsCacheTTL bounds how stale a cached audit aggregate may get
const statsCacheTTL = 15 * time.Second

// Supported operations
const (
	OperationAdd      = "add"
	OperationSubtract = "subtract"
)

// ServiceName identifies this service in Describe responses
const ServiceName = "gauss"

// Config holds service configuration
type Config struct {
	// AuditPath is the sqlite file for the computation audit trail.
	// Empty disables auditing.
	AuditPath string

	// AuditRetention prunes audit records older than this age on startup.
	// Zero keeps everything.
	AuditRetention time.Duration
}

// DefaultConfig returns default service configuration
func DefaultConfig() Config {
	return Config{}
}

// Service is the stateless computation engine. All state lives in the
// optional audit store; the service itself keeps only counters.
type Service struct {
	config Config
	store  store.AuditStore
	logger *logging.Logger

	// statsCache shields the audit store from repeated aggregation
	// queries by health checks and status requests
	statsCache *cache.Cache

	startTime    time.Time
	computations atomic.Int64
}

// NewService creates a new gauss service
func NewService(cfg Config) (*Service, error) {
	logger := logging.New("gauss-service")

	svc := &Service{
		config:    cfg,
		logger:    logger,
		startTime: time.Now(),
	}

	if cfg.AuditPath != "" {
		st, err := store.NewSQLiteAuditStore(store.SQLiteAuditConfig{Path: cfg.AuditPath})
		if err != nil {
			return nil, rwerror.Wrap(err, "failed to open audit store").
				WithCode(rwerror.CodeServiceInitialization).
				WithOperation("service.NewService")
		}
		svc.store = st
		svc.statsCache = cache.New(cache.Config{MaxItems: 16, TTL: statsCacheTTL})
		logger.Info("audit trail enabled", "path", cfg.AuditPath)

		if cfg.AuditRetention > 0 {
			deleted, err := st.Prune(context.Background(), cfg.AuditRetention)
			if err != nil {
				logger.Warn("audit prune failed", "error", err)
			} else if deleted > 0 {
				logger.Info("pruned audit records", "deleted", deleted)
			}
		}
	}

	return svc, nil
}

// Compute executes one arithmetic operation. The computation itself is
// pure; auditing failures are logged but never fail the computation.
func (s *Service) Compute(ctx context.Context, operation string, lhs, rhs int64) (int64, error) {
	var result int64
	switch operation {
	case OperationAdd:
		result = lhs + rhs
	case OperationSubtract:
		result = lhs - rhs
	default:
		return 0, rwerror.Newf("unsupported operation %q", operation).
			WithCode(rwerror.CodeInvalidOperation).
			WithOperation("service.Compute")
	}

	s.computations.Add(1)
	s.logger.Debug("computed", "operation", operation, "lhs", lhs, "rhs", rhs, "result", result)

	if s.store != nil {
		rec := &store.ComputationRecord{
			Operation: operation,
			Lhs:       lhs,
			Rhs:       rhs,
			Result:    result,
			RequestID: coregrpc.GetRequestID(ctx),
		}
		if err := s.store.Record(ctx, rec); err != nil {
			s.logger.Warn("audit record failed", "error", err)
		}
	}

	return result, nil
}

// Capabilities returns the operations this service advertises
func (s *Service) Capabilities() []string {
	return []string{OperationAdd, OperationSubtract}
}

// Version returns the service version
func (s *Service) Version() string {
	return version.Gauss
}

// Computations returns the number of computations since startup
func (s *Service) Computations() int64 {
	return s.computations.Load()
}

// Uptime returns the time since service creation
func (s *Service) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// AuditStats returns statistics from the audit store, or nil when
// auditing is disabled. Aggregates are cached briefly, so frequent
// health checks do not hammer the store.
func (s *Service) AuditStats(ctx context.Context) (*store.AuditStats, error) {
	if s.store == nil {
		return nil, nil
	}
	val, err := s.statsCache.GetOrSet("audit-stats", func() (interface{}, error) {
		return s.store.Stats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return val.(*store.AuditStats), nil
}

// Close releases the audit store
func (s *Service) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
