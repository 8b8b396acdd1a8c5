// Package testutil provides logging helpers for tests.
package testutil

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes through t.Log,
// so output only shows for failing tests or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(tbWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type tbWriter struct {
	t testing.TB
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Record is a captured log entry with its attributes flattened to strings.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Recorder captures log records for assertions. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecordingLogger returns a debug-level logger and the Recorder behind it.
func NewRecordingLogger() (*slog.Logger, *Recorder) {
	rec := &Recorder{}
	return slog.New(&recordingHandler{rec: rec}), rec
}

// Records returns a copy of everything logged so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Messages returns the messages logged at level, in order.
func (r *Recorder) Messages(level slog.Level) []string {
	var msgs []string
	for _, rec := range r.Records() {
		if rec.Level == level {
			msgs = append(msgs, rec.Message)
		}
	}
	return msgs
}

type recordingHandler struct {
	rec   *Recorder
	attrs []slog.Attr
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]string, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})

	h.rec.mu.Lock()
	h.rec.records = append(h.rec.records, Record{Level: r.Level, Message: r.Message, Attrs: attrs})
	h.rec.mu.Unlock()
	return nil
}

func (h *recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &recordingHandler{rec: h.rec, attrs: merged}
}

// WithGroup is a no-op; groups are not used by rflint's logging.
func (h *recordingHandler) WithGroup(string) slog.Handler { return h }
