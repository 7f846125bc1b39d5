// Package observability provides metrics recorders for the validation
// engine: an expvar-backed recorder for process-local inspection and a
// Prometheus recorder for scraped deployments. Recorders only count
// outcomes; the engine itself never logs or exports anything.
package observability

import (
	"expvar"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"herdcore/pkg/domain"
)

var expvarSeq uint64

// ExpvarRecorder publishes per-kind validation counters via expvar. It suits
// deployments that prefer process-local metrics without external
// dependencies.
type ExpvarRecorder struct {
	name     string
	mu       sync.Mutex
	outcomes map[string]map[string]int64
	findings map[string]map[string]int64
}

// ExpvarSnapshot captures a read-only view of the recorded counters.
type ExpvarSnapshot struct {
	Outcomes   map[string]map[string]int64 `json:"validations_total"`
	Findings   map[string]map[string]int64 `json:"findings_total"`
	RecordedAt time.Time                   `json:"recorded_at"`
}

// NewExpvarRecorder constructs an expvar-backed recorder and publishes it
// under the supplied name. When name is empty, a unique identifier is
// generated.
func NewExpvarRecorder(name string) *ExpvarRecorder {
	if name == "" {
		id := atomic.AddUint64(&expvarSeq, 1)
		name = fmt.Sprintf("validation_metrics_%d", id)
	}
	rec := &ExpvarRecorder{
		name:     name,
		outcomes: make(map[string]map[string]int64),
		findings: make(map[string]map[string]int64),
	}
	expvar.Publish(name, expvar.Func(func() any {
		return rec.Snapshot()
	}))
	return rec
}

// Name returns the expvar export name associated with the recorder.
func (r *ExpvarRecorder) Name() string {
	return r.name
}

// Record counts one validation pass by record kind and outcome, plus its
// individual findings by severity.
func (r *ExpvarRecorder) Record(kind string, res domain.Result) {
	outcome := "invalid"
	if res.IsValid() {
		outcome = "valid"
	}

	r.mu.Lock()
	bump(r.outcomes, kind, outcome, 1)
	bump(r.findings, kind, "error", int64(len(res.Errors)))
	bump(r.findings, kind, "warning", int64(len(res.Warnings)))
	r.mu.Unlock()
}

func bump(counters map[string]map[string]int64, kind, key string, n int64) {
	m, ok := counters[kind]
	if !ok {
		m = make(map[string]int64, 2)
		counters[kind] = m
	}
	m[key] += n
}

// Snapshot returns an immutable copy of the aggregated counters.
func (r *ExpvarRecorder) Snapshot() ExpvarSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	outcomes := make(map[string]map[string]int64, len(r.outcomes))
	for kind, counts := range r.outcomes {
		cpy := make(map[string]int64, len(counts))
		for key, count := range counts {
			cpy[key] = count
		}
		outcomes[kind] = cpy
	}

	findings := make(map[string]map[string]int64, len(r.findings))
	for kind, counts := range r.findings {
		cpy := make(map[string]int64, len(counts))
		for key, count := range counts {
			cpy[key] = count
		}
		findings[kind] = cpy
	}

	return ExpvarSnapshot{
		Outcomes:   outcomes,
		Findings:   findings,
		RecordedAt: time.Now().UTC(),
	}
}
