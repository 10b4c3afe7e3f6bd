package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ComputationRecord is one audited computation
type ComputationRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation"`
	Lhs       int64     `json:"lhs"`
	Rhs       int64     `json:"rhs"`
	Result    int64     `json:"result"`
	RequestID string    `json:"request_id,omitempty"`
}

// AuditStats summarizes the audit log
type AuditStats struct {
	TotalRecords       int64
	RecordsByOperation map[string]int64
	LastRecordTime     time.Time
}

// AuditStore defines the interface for computation audit persistence
type AuditStore interface {
	Record(ctx context.Context, rec *ComputationRecord) error
	Recent(ctx context.Context, limit int) ([]*ComputationRecord, error)
	Stats(ctx context.Context) (*AuditStats, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteAuditStore implements AuditStore using SQLite
type SQLiteAuditStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteAuditConfig holds configuration for the SQLite store
type SQLiteAuditConfig struct {
	Path string
}

// DefaultAuditConfig returns default configuration
func DefaultAuditConfig() SQLiteAuditConfig {
	return SQLiteAuditConfig{
		Path: "./data/gauss-audit.db",
	}
}

// NewSQLiteAuditStore creates a new SQLite-based audit store
func NewSQLiteAuditStore(cfg SQLiteAuditConfig) (*SQLiteAuditStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteAuditStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteAuditStore) initSchema() error {
	schema := `
	-- Computation audit table
	CREATE TABLE IF NOT EXISTS computations (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		operation TEXT NOT NULL,
		lhs INTEGER NOT NULL,
		rhs INTEGER NOT NULL,
		result INTEGER NOT NULL,
		request_id TEXT
	);

	-- Indices for efficient querying
	CREATE INDEX IF NOT EXISTS idx_computations_timestamp ON computations(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_computations_operation ON computations(operation);
	CREATE INDEX IF NOT EXISTS idx_computations_request_id ON computations(request_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores one computation
func (s *SQLiteAuditStore) Record(ctx context.Context, rec *ComputationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO computations (id, timestamp, operation, lhs, rhs, result, request_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Timestamp, rec.Operation, rec.Lhs, rec.Rhs, rec.Result, rec.RequestID)

	if err != nil {
		return fmt.Errorf("failed to insert computation record: %w", err)
	}

	return nil
}

// Recent returns the most recent computations, newest first
func (s *SQLiteAuditStore) Recent(ctx context.Context, limit int) ([]*ComputationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, operation, lhs, rhs, result, request_id
		FROM computations
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query computations: %w", err)
	}
	defer rows.Close()

	var records []*ComputationRecord
	for rows.Next() {
		var rec ComputationRecord
		var requestID sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Operation, &rec.Lhs,
			&rec.Rhs, &rec.Result, &requestID); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		rec.RequestID = requestID.String
		records = append(records, &rec)
	}

	return records, rows.Err()
}

// Stats returns summary statistics over the audit log
func (s *SQLiteAuditStore) Stats(ctx context.Context) (*AuditStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &AuditStats{
		RecordsByOperation: make(map[string]int64),
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM computations`).Scan(&stats.TotalRecords); err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT operation, COUNT(*) FROM computations GROUP BY operation
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var op string
		var count int64
		if err := rows.Scan(&op, &count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats.RecordsByOperation[op] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var last sql.NullTime
	if err := s.db.QueryRowContext(ctx,
		`SELECT MAX(timestamp) FROM computations`).Scan(&last); err != nil {
		return nil, fmt.Errorf("failed to query last record time: %w", err)
	}
	if last.Valid {
		stats.LastRecordTime = last.Time
	}

	return stats, nil
}

// Prune deletes records older than the given age and returns the number
// of deleted rows
func (s *SQLiteAuditStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM computations WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune computations: %w", err)
	}

	return res.RowsAffected()
}

// Close closes the database
func (s *SQLiteAuditStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
