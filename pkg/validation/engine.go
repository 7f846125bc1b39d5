// Package validation implements the herdcore rule engine: pure, stateless
// validators over candidate records that report blocking errors and advisory
// warnings through the domain result contract. Validators never perform I/O
// and never panic on malformed input; every finding for a record is collected
// in a single pass.
package validation

import (
	"time"

	"herdcore/pkg/domain"
)

// Record kinds reported to the metrics recorder.
const (
	KindCattle    = "cattle"
	KindEvent     = "event"
	KindUser      = "user"
	KindLocation  = "location"
	KindFile      = "file"
	KindDateRange = "date_range"
	KindPage      = "page"
)

// Recorder observes the outcome of composite validations. Implementations
// must be safe for concurrent use. A nil recorder disables recording.
type Recorder interface {
	Record(kind string, res domain.Result)
}

// Engine evaluates domain rules against candidate records. All configuration
// is fixed at construction; an Engine is immutable and safe for concurrent
// use from any number of goroutines.
type Engine struct {
	limits   Limits
	now      func() time.Time
	recorder Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimits replaces the default bounds and thresholds.
func WithLimits(limits Limits) Option {
	return func(e *Engine) { e.limits = limits }
}

// WithClock replaces the time source used for relative-date rules. Each
// composite validation reads the clock exactly once so that every temporal
// check within one pass sees the same instant.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(rec Recorder) Option {
	return func(e *Engine) { e.recorder = rec }
}

// New constructs an engine, rejecting inconsistent limits.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		limits: DefaultLimits(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.limits.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Limits returns the bounds the engine was constructed with.
func (e *Engine) Limits() Limits {
	return e.limits
}

func (e *Engine) record(kind string, res domain.Result) {
	if e.recorder != nil {
		e.recorder.Record(kind, res)
	}
}
