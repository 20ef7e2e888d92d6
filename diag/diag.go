// Package diag reports per-theorem outcomes.
//
// Failures of one theorem never stop the processing of others; they are
// handed to a Sink with the theorem label and, for decoding failures, the
// proof block and character position.
package diag

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/signadot/mmproof/codec"
)

type Sink interface {
	Info(theorem, msg string)
	Error(theorem string, err error)
}

// LogSink writes diagnostics to a slog logger.
type LogSink struct {
	Log *slog.Logger
}

func (s *LogSink) Info(theorem, msg string) {
	s.Log.Info(msg, "theorem", theorem)
}

func (s *LogSink) Error(theorem string, err error) {
	attrs := []any{"theorem", theorem}
	var ce *codec.Error
	if errors.As(err, &ce) && ce.Block >= 0 {
		attrs = append(attrs, "block", ce.Block+1, "char", ce.Char+1)
	}
	attrs = append(attrs, "error", err)
	s.Log.Error("failed", attrs...)
}

type Entry struct {
	Theorem string
	Msg     string
	Err     error
}

// Collector keeps diagnostics in memory. It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	infos  []Entry
	errors []Entry
}

func (c *Collector) Info(theorem, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infos = append(c.infos, Entry{Theorem: theorem, Msg: msg})
}

func (c *Collector) Error(theorem string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, Entry{Theorem: theorem, Msg: err.Error(), Err: err})
}

func (c *Collector) Infos() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.infos)
}

func (c *Collector) Errors() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.errors)
}

// Multi sends every diagnostic to each of sinks.
type Multi []Sink

func (m Multi) Info(theorem, msg string) {
	for _, s := range m {
		s.Info(theorem, msg)
	}
}

func (m Multi) Error(theorem string, err error) {
	for _, s := range m {
		s.Error(theorem, err)
	}
}
