package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects delivered results under a lock so tests can assert on
// them after the asynchronous machinery settles.
type recorder struct {
	mu      sync.Mutex
	results []string
}

func (r *recorder) deliver(v string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.results...)
}

func TestDebounceCoalescesRapidTriggers(t *testing.T) {
	var (
		mu     sync.Mutex
		inputs []string
	)
	query := func(_ context.Context, in string) (string, error) {
		mu.Lock()
		inputs = append(inputs, in)
		mu.Unlock()
		return in, nil
	}

	rec := &recorder{}
	d := NewDebouncedQuery(30*time.Millisecond, query, rec.deliver)
	defer d.Close()

	ctx := context.Background()
	for _, in := range []string{"h", "ho", "hom", "home", "homew"} {
		d.Trigger(ctx, in)
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	issued := append([]string(nil), inputs...)
	mu.Unlock()

	require.Equal(t, []string{"homew"}, issued, "only the last input may reach the service")
	assert.Equal(t, []string{"homew"}, rec.snapshot())
}

func TestDebounceDiscardsSupersededResult(t *testing.T) {
	slowDone := make(chan struct{})
	query := func(_ context.Context, in string) (string, error) {
		if in == "slow" {
			<-slowDone
		}
		return in, nil
	}

	rec := &recorder{}
	d := NewDebouncedQuery(10*time.Millisecond, query, rec.deliver)
	defer d.Close()

	ctx := context.Background()

	// First query fires and blocks in flight.
	d.Trigger(ctx, "slow")
	time.Sleep(50 * time.Millisecond)

	// Second query fires and completes while the first is still pending.
	d.Trigger(ctx, "fast")
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, []string{"fast"}, rec.snapshot())

	// The first query's late result must be dropped, not applied.
	close(slowDone)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"fast"}, rec.snapshot(), "a superseded result must never be delivered")
}

func TestDebounceCancelStopsPendingQuery(t *testing.T) {
	var called bool
	var mu sync.Mutex
	query := func(_ context.Context, in string) (string, error) {
		mu.Lock()
		called = true
		mu.Unlock()
		return in, nil
	}

	d := NewDebouncedQuery(30*time.Millisecond, query, func(string, error) {})
	defer d.Close()

	d.Trigger(context.Background(), "doomed")
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, called)
}

func TestDebounceCloseDiscardsEverything(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncedQuery(10*time.Millisecond, func(_ context.Context, in string) (string, error) {
		return in, nil
	}, rec.deliver)

	d.Trigger(context.Background(), "before-close")
	d.Close()
	d.Trigger(context.Background(), "after-close")

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebounceDeliversQueryError(t *testing.T) {
	var (
		mu      sync.Mutex
		gotErrs []error
	)
	d := NewDebouncedQuery(10*time.Millisecond, func(_ context.Context, in string) (string, error) {
		return "", assert.AnError
	}, func(_ string, err error) {
		mu.Lock()
		gotErrs = append(gotErrs, err)
		mu.Unlock()
	})
	defer d.Close()

	d.Trigger(context.Background(), "boom")
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, gotErrs, 1)
	assert.ErrorIs(t, gotErrs[0], assert.AnError)
}
