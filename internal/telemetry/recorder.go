// Package telemetry records dispatch attempts as Prometheus metrics and keeps
// the most recent ones in memory for operator inspection.
package telemetry

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

const defaultCapacity = 100

// Recorder implements domain.AttemptRecorder.
type Recorder struct {
	attempts    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	defaultPath *prometheus.CounterVec

	mu     sync.Mutex
	ring   []domain.Attempt
	next   int
	filled bool
}

// NewRecorder registers the attempt metrics on registerer and keeps the last
// capacity attempts in memory.
func NewRecorder(registerer prometheus.Registerer, capacity int) *Recorder {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	factory := promauto.With(registerer)

	return &Recorder{
		attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "shreegen",
				Subsystem: "router",
				Name:      "attempts_total",
				Help:      "Total adapter invocations by target and outcome",
			},
			[]string{"kind", "target", "category", "outcome", "reason"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "shreegen",
				Subsystem: "router",
				Name:      "attempt_duration_seconds",
				Help:      "Adapter invocation latency in seconds",
				Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"kind", "target", "outcome"},
		),
		defaultPath: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "shreegen",
				Subsystem: "router",
				Name:      "default_path_total",
				Help:      "Requests served through the default route by outcome",
			},
			[]string{"outcome"},
		),
		ring: make([]domain.Attempt, capacity),
	}
}

// Record stores the attempt and updates the metrics.
func (r *Recorder) Record(ctx context.Context, attempt domain.Attempt) {
	kind := string(attempt.Target.Kind)
	target := attempt.Target.Name
	outcome := string(attempt.Outcome)

	r.attempts.WithLabelValues(kind, target, string(attempt.Category), outcome, string(attempt.Reason)).Inc()
	r.latency.WithLabelValues(kind, target, outcome).Observe(attempt.Latency.Seconds())
	if attempt.DefaultPath {
		r.defaultPath.WithLabelValues(outcome).Inc()
	}

	r.mu.Lock()
	r.ring[r.next] = attempt
	r.next = (r.next + 1) % len(r.ring)
	if r.next == 0 {
		r.filled = true
	}
	r.mu.Unlock()

	observability.FromContext(ctx).Debug("attempt recorded",
		observability.String("candidate_id", attempt.CandidateID),
		observability.String("outcome", outcome),
		observability.Duration("latency", attempt.Latency))
}

// Recent returns up to limit attempts, newest first. A non-positive limit returns all.
func (r *Recorder) Recent(limit int) []domain.Attempt {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := r.next
	if r.filled {
		size = len(r.ring)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]domain.Attempt, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (r.next - i + len(r.ring)) % len(r.ring)
		out = append(out, r.ring[idx])
	}

	return out
}
