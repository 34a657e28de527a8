package viewtracker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureStore struct {
	mu      sync.Mutex
	flushes []map[string]int64
	err     error
}

func (s *captureStore) store(counts map[string]int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]int64, len(counts))
	for k, v := range counts {
		copied[k] = v
	}
	s.flushes = append(s.flushes, copied)
	return s.err
}

func (s *captureStore) totals() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := make(map[string]int64)
	for _, flush := range s.flushes {
		for k, v := range flush {
			total[k] += v
		}
	}
	return total
}

func TestTrackerAggregatesViewsPerProperty(t *testing.T) {
	store := &captureStore{}
	tracker := New(store.store, WithFlushInterval(time.Hour))

	tracker.Record("prop-a")
	tracker.Record("prop-a")
	tracker.Record("prop-b")
	tracker.Stop()

	totals := store.totals()
	assert.Equal(t, int64(2), totals["prop-a"])
	assert.Equal(t, int64(1), totals["prop-b"])
}

func TestTrackerFlushesWhenBatchSizeReached(t *testing.T) {
	store := &captureStore{}
	tracker := New(store.store, WithFlushInterval(time.Hour), WithBatchSize(3))
	defer tracker.Stop()

	tracker.Record("prop-a")
	tracker.Record("prop-b")
	tracker.Record("prop-a")

	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.flushes) >= 1
	}, time.Second, 5*time.Millisecond)

	totals := store.totals()
	assert.Equal(t, int64(2), totals["prop-a"])
	assert.Equal(t, int64(1), totals["prop-b"])
}

func TestTrackerStopFlushesRemainder(t *testing.T) {
	store := &captureStore{}
	tracker := New(store.store, WithFlushInterval(time.Hour), WithBatchSize(1000))

	tracker.Record("prop-a")
	tracker.Stop()

	totals := store.totals()
	assert.Equal(t, int64(1), totals["prop-a"])
}

func TestTrackerSwallowsStoreFailures(t *testing.T) {
	store := &captureStore{err: errors.New("db down")}
	tracker := New(store.store, WithFlushInterval(time.Hour))

	tracker.Record("prop-a")

	// Stop must return normally even when every flush fails
	done := make(chan struct{})
	go func() {
		tracker.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after store failure")
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.flushes, 1)
}

func TestTrackerRecordAfterStopIsNoOp(t *testing.T) {
	store := &captureStore{}
	tracker := New(store.store, WithFlushInterval(time.Hour))

	tracker.Record("prop-a")
	tracker.Stop()

	// must neither panic nor reach the store
	tracker.Record("prop-b")
	tracker.Record("prop-b")

	totals := store.totals()
	assert.Equal(t, int64(1), totals["prop-a"])
	assert.Zero(t, totals["prop-b"])
}

func TestTrackerRecordNeverBlocksWhenBufferFull(t *testing.T) {
	block := make(chan struct{})
	tracker := New(func(map[string]int64) error {
		<-block
		return nil
	}, WithFlushInterval(time.Hour), WithBufferSize(1), WithBatchSize(1))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			tracker.Record("prop-a")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked with a full buffer")
	}

	close(block)
	tracker.Stop()
}
