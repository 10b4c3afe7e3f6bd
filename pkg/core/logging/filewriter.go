// ============================================================================
// Rechenwerk - Verteilter Taschenrechner
// ============================================================================
//
// Package:     logging
// Description: FileWriter appends batched log entries to a log file
// Author:      msto63
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileWriter implements io.Writer and appends log entries to a file in
// batches. Entries are always written to the fallback writer immediately
// for local visibility; the file is flushed when the batch is full or the
// flush period elapses.
type FileWriter struct {
	// Configuration
	path        string
	batchSize   int
	flushPeriod time.Duration

	// File handle
	file *os.File

	// Batching
	buffer   [][]byte
	bufferMu sync.Mutex
	flushCh  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}

	// Fallback
	fallback io.Writer
}

// FileWriterConfig holds configuration for FileWriter
type FileWriterConfig struct {
	Path        string        // Log file path
	BatchSize   int           // Number of entries to batch (default: 100)
	FlushPeriod time.Duration // How often to flush (default: 5s)
	Fallback    io.Writer     // Immediate writer (default: os.Stdout)
}

// DefaultFileWriterConfig returns default configuration
func DefaultFileWriterConfig(path string) FileWriterConfig {
	return FileWriterConfig{
		Path:        path,
		BatchSize:   100,
		FlushPeriod: 5 * time.Second,
		Fallback:    os.Stdout,
	}
}

// NewFileWriter creates a new FileWriter
func NewFileWriter(cfg FileWriterConfig) (*FileWriter, error) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushPeriod <= 0 {
		cfg.FlushPeriod = 5 * time.Second
	}
	if cfg.Fallback == nil {
		cfg.Fallback = os.Stdout
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.Path, err)
	}

	w := &FileWriter{
		path:        cfg.Path,
		batchSize:   cfg.BatchSize,
		flushPeriod: cfg.FlushPeriod,
		file:        file,
		buffer:      make([][]byte, 0, cfg.BatchSize),
		flushCh:     make(chan struct{}, 1),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		fallback:    cfg.Fallback,
	}

	// Start flush worker
	go w.flushWorker()

	return w, nil
}

// Write implements io.Writer
func (w *FileWriter) Write(p []byte) (n int, err error) {
	// Always write to fallback first (for local visibility)
	n, err = w.fallback.Write(p)
	if err != nil {
		return n, err
	}

	// Copy the entry; the logger may reuse the buffer
	entry := make([]byte, len(p))
	copy(entry, p)

	// Add to buffer
	w.bufferMu.Lock()
	w.buffer = append(w.buffer, entry)
	shouldFlush := len(w.buffer) >= w.batchSize
	w.bufferMu.Unlock()

	// Trigger flush if buffer is full
	if shouldFlush {
		select {
		case w.flushCh <- struct{}{}:
		default:
		}
	}

	return n, nil
}

// flushWorker periodically flushes the buffer
func (w *FileWriter) flushWorker() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.flushPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			// Final flush
			w.flush()
			return
		case <-w.flushCh:
			w.flush()
		case <-ticker.C:
			w.flush()
		}
	}
}

// flush writes the buffered entries to the file
func (w *FileWriter) flush() {
	w.bufferMu.Lock()
	if len(w.buffer) == 0 {
		w.bufferMu.Unlock()
		return
	}
	batch := w.buffer
	w.buffer = make([][]byte, 0, w.batchSize)
	w.bufferMu.Unlock()

	for _, entry := range batch {
		if _, err := w.file.Write(entry); err != nil {
			// File write failed; the entry already reached the fallback
			return
		}
	}
	_ = w.file.Sync()
}

// Close flushes remaining entries and closes the file
func (w *FileWriter) Close() error {
	close(w.stopCh)
	<-w.doneCh
	return w.file.Close()
}
