// Package eventlog provides an append-only JSONL sink for structured event
// records, one JSON document per line. It is a peripheral utility for hosts
// that want a durable trace of schema compilations and validation runs.
package eventlog

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Entry is a single event record. Timestamp is serialized as an ISO-8601
// (RFC 3339) string.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Event     string         `json:"eventName"`
	RunID     string         `json:"runId"`
	Data      any            `json:"data"`
	Tags      []string       `json:"tags,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Writer appends entries to a JSONL file. It is safe for concurrent use and
// flushes after every write; the caller closes it explicitly.
type Writer struct {
	path string
	file *os.File
	mu   sync.Mutex
}

// NewWriter opens (or creates) the file at path in append mode.
func NewWriter(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("eventlog: open %s: %w", path, err)
	}
	return &Writer{path: path, file: file}, nil
}

// NewRunID returns a fresh run identifier for correlating entries.
func NewRunID() string { return uuid.NewString() }

// Write appends one entry as a single JSON line. A zero Timestamp is filled
// with the current time; an empty RunID gets a fresh identifier.
func (w *Writer) Write(e Entry) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	if e.RunID == "" {
		e.RunID = NewRunID()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("eventlog: marshal entry: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("eventlog: write entry: %w", err)
	}
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("eventlog: flush: %w", err)
	}
	return nil
}

// Close flushes buffered data and closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("eventlog: flush before close: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("eventlog: close: %w", err)
	}
	return nil
}
