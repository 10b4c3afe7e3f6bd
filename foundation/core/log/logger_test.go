// File: logger_test.go
// Title: Logger Tests
// Description: Tests for the structured logger covering filtering, context
//              fields, and output formats.
// Author: msto63
// Version: v0.1.0
// Created: 2025-07-12
// Modified: 2025-07-12

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatText)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")
	logger.Error("kept too")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "kept too") {
		t.Errorf("output missing expected messages: %q", out)
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON)

	logger.Info("connected", Fields{"host": "localhost", "port": 4242})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if data["message"] != "connected" {
		t.Errorf("message = %v, want connected", data["message"])
	}
	if data["level"] != "info" {
		t.Errorf("level = %v, want info", data["level"])
	}
	if data["logger"] != "test" {
		t.Errorf("logger = %v, want test", data["logger"])
	}
	if data["host"] != "localhost" {
		t.Errorf("host = %v, want localhost", data["host"])
	}
	if data["port"] != float64(4242) {
		t.Errorf("port = %v, want 4242", data["port"])
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON)

	child := logger.WithFields(Fields{"component": "machine"})
	child.Info("event")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if data["component"] != "machine" {
		t.Errorf("component = %v, want machine", data["component"])
	}

	// Parent must not be affected by the child's fields
	buf.Reset()
	logger.Info("event")
	if strings.Contains(buf.String(), "machine") {
		t.Error("parent logger inherited child fields")
	}
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatText)

	logger.WithRequestID("req-123").Info("handled")

	if !strings.Contains(buf.String(), "request_id=req-123") {
		t.Errorf("output missing request id: %q", buf.String())
	}
}

func TestLogger_ErrorErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON)

	logger.ErrorErr("request failed", errors.New("timeout"))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if data["error"] != "timeout" {
		t.Errorf("error = %v, want timeout", data["error"])
	}
}

func TestLogger_TextFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatText)

	logger.Info("x", Fields{"b": 2, "a": 1, "c": 3})

	out := buf.String()
	ia, ib, ic := strings.Index(out, "a=1"), strings.Index(out, "b=2"), strings.Index(out, "c=3")
	if ia < 0 || ib < 0 || ic < 0 || !(ia < ib && ib < ic) {
		t.Errorf("fields not ordered deterministically: %q", out)
	}
}

func TestFields_Merge(t *testing.T) {
	a := Fields{"x": 1, "y": 2}
	b := Fields{"y": 3, "z": 4}

	merged := a.Merge(b)
	if merged["x"] != 1 || merged["y"] != 3 || merged["z"] != 4 {
		t.Errorf("Merge() = %v", merged)
	}
	if a["y"] != 2 {
		t.Error("Merge() mutated the receiver")
	}
}
