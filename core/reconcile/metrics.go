package reconcile

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// rowsTotal counts rows touched by reconciliation passes.
	// Labels: collection, action (kept, skipped, added, deleted, cascade_deleted)
	rowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "menu",
		Subsystem: "reconcile",
		Name:      "rows_total",
		Help:      "Total rows touched by reconciliation passes",
	}, []string{"collection", "action"})
)

type recorderKey struct{}

// Recorder holds results produced inside a transaction until it commits.
// Results of a rolled back transaction are never counted.
type Recorder struct {
	mu      sync.Mutex
	pending []*Result
}

// WithRecorder returns a context whose reconciliation results are held by
// the returned Recorder instead of being counted immediately.
func WithRecorder(ctx context.Context) (context.Context, *Recorder) {
	r := &Recorder{}
	return context.WithValue(ctx, recorderKey{}, r), r
}

// Flush counts every held result and empties the recorder.
func (r *Recorder) Flush() {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, res := range pending {
		record(res)
	}
}

// Discard drops every held result.
func (r *Recorder) Discard() {
	r.mu.Lock()
	r.pending = nil
	r.mu.Unlock()
}

func observe(ctx context.Context, res *Result) {
	if r, ok := ctx.Value(recorderKey{}).(*Recorder); ok {
		r.mu.Lock()
		r.pending = append(r.pending, res)
		r.mu.Unlock()
		return
	}
	record(res)
}

func record(res *Result) {
	rowsTotal.WithLabelValues(res.Collection, ActionKept).Add(float64(len(res.Kept)))
	if res.Skipped > 0 {
		rowsTotal.WithLabelValues(res.Collection, ActionSkipped).Add(float64(res.Skipped))
	}
	if res.Added > 0 {
		rowsTotal.WithLabelValues(res.Collection, ActionAdded).Add(float64(res.Added))
	}
	if res.Deleted > 0 {
		rowsTotal.WithLabelValues(res.Collection, ActionDeleted).Add(float64(res.Deleted))
	}
	if res.CascadeDeleted > 0 {
		rowsTotal.WithLabelValues(res.Collection, ActionCascadeDeleted).Add(float64(res.CascadeDeleted))
	}
}
