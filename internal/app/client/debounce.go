package client

import (
	"context"
	"sync"
	"time"
)

// DebouncedQuery coalesces rapid-fire triggers into at most one query per
// settling window and guarantees that only the most recently issued
// query's result is ever delivered, regardless of network completion
// order. Results of superseded queries are discarded, never applied.
//
// Only the timer phase of a trigger is cancellable; an in-flight query
// runs to completion and its result is dropped if stale by then.
type DebouncedQuery[I, T any] struct {
	window   time.Duration
	query    func(context.Context, I) (T, error)
	onResult func(T, error)

	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64 // most recently issued query
	closed bool

	// deliverMu serializes result delivery so two surviving callbacks can
	// never interleave; applied tracks the newest delivered sequence.
	deliverMu sync.Mutex
	applied   uint64
}

// NewDebouncedQuery builds a debouncer around query. onResult is invoked,
// in issue order, only for results that are still current at completion
// time; it receives the query error unfiltered.
func NewDebouncedQuery[I, T any](
	window time.Duration,
	query func(context.Context, I) (T, error),
	onResult func(T, error),
) *DebouncedQuery[I, T] {
	return &DebouncedQuery[I, T]{
		window:   window,
		query:    query,
		onResult: onResult,
	}
}

// Trigger records a new input. Any pending, not-yet-fired timer is
// cancelled and the settling window restarts; when it elapses the query
// is issued with this input.
func (d *DebouncedQuery[I, T]) Trigger(ctx context.Context, input I) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.fire(ctx, input)
	})
}

func (d *DebouncedQuery[I, T]) fire(ctx context.Context, input I) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	result, err := d.query(ctx, input)

	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()

	d.mu.Lock()
	stale := d.closed || seq != d.seq || seq <= d.applied
	if !stale {
		d.applied = seq
	}
	d.mu.Unlock()

	if !stale {
		d.onResult(result, err)
	}
}

// Cancel stops a pending timer without side effects. A query already in
// flight is unaffected; its result is still subject to the staleness rule.
func (d *DebouncedQuery[I, T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Close cancels any pending timer and discards all future triggers and
// results.
func (d *DebouncedQuery[I, T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.closed = true
}
