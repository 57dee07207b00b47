package discovery

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder[T any] struct {
	mu     sync.Mutex
	values []T
}

func (r *recorder[T]) record(v T) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
}

func (r *recorder[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.values...)
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	rec := &recorder[string]{}
	d := NewDebouncer(30*time.Millisecond, rec.record)

	d.Set("s")
	d.Set("so")
	d.Set("son")
	d.Set("sony")

	time.Sleep(100 * time.Millisecond)

	got := rec.snapshot()
	require.Len(t, got, 1, "a burst inside the quiet period must settle exactly once")
	assert.Equal(t, "sony", got[0])
}

func TestDebouncerEmitsEachSettledValue(t *testing.T) {
	rec := &recorder[int]{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Set(1)
	time.Sleep(60 * time.Millisecond)
	d.Set(2)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, []int{1, 2}, rec.snapshot())
}

func TestDebouncerInstancesAreIndependent(t *testing.T) {
	search := &recorder[string]{}
	price := &recorder[float64]{}
	ds := NewDebouncer(20*time.Millisecond, search.record)
	dp := NewDebouncer(20*time.Millisecond, price.record)

	ds.Set("tv")
	dp.Set(199.99)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, []string{"tv"}, search.snapshot())
	assert.Equal(t, []float64{199.99}, price.snapshot())
}

func TestDebouncerFlush(t *testing.T) {
	rec := &recorder[string]{}
	d := NewDebouncer(time.Hour, rec.record)

	d.Flush()
	assert.Empty(t, rec.snapshot(), "flush with nothing pending must not emit")

	d.Set("headphones")
	d.Flush()
	require.Equal(t, []string{"headphones"}, rec.snapshot())

	// The cancelled timer must not fire a second delivery later.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, []string{"headphones"}, rec.snapshot())
}

func TestDebouncerStopDropsPendingValue(t *testing.T) {
	rec := &recorder[string]{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Set("dropped")
	d.Stop()
	time.Sleep(60 * time.Millisecond)

	assert.Empty(t, rec.snapshot())
}
