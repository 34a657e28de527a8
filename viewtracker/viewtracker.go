package viewtracker

import (
	"time"

	"github.com/nusava/nusava-backend/logger"
	"github.com/nusava/nusava-backend/prometheus"
	"go.uber.org/zap"
)

// StoreFunc persists a batch of view-count increments keyed by property ID.
type StoreFunc func(counts map[string]int64) error

// Tracker records property detail views off the request path. Record never
// blocks the caller and a failed flush is logged and swallowed; view counting
// must never surface an error to, or add latency on, the detail endpoint.
type Tracker struct {
	events        chan string
	stop          chan struct{}
	done          chan struct{}
	store         StoreFunc
	flushInterval time.Duration
	batchSize     int
}

// Option configures a Tracker
type Option func(*Tracker)

// WithFlushInterval overrides the default 5s flush interval
func WithFlushInterval(d time.Duration) Option {
	return func(t *Tracker) { t.flushInterval = d }
}

// WithBatchSize overrides the pending-increment threshold that forces a flush
func WithBatchSize(n int) Option {
	return func(t *Tracker) { t.batchSize = n }
}

// WithBufferSize overrides the event channel capacity
func WithBufferSize(n int) Option {
	return func(t *Tracker) { t.events = make(chan string, n) }
}

// New creates a tracker and starts its worker goroutine
func New(store StoreFunc, opts ...Option) *Tracker {
	t := &Tracker{
		events:        make(chan string, 1024),
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
		store:         store,
		flushInterval: 5 * time.Second,
		batchSize:     64,
	}
	for _, opt := range opts {
		opt(t)
	}

	go t.run()
	return t
}

// Record registers one view of the property. It never blocks: when the
// buffer is full the event is dropped and counted in metrics instead.
// Recording after Stop is a no-op, so a late in-flight request during
// shutdown cannot panic the process.
func (t *Tracker) Record(propertyID string) {
	select {
	case <-t.stop:
		return
	default:
	}

	select {
	case t.events <- propertyID:
	default:
		if prometheus.ViewEventsDroppedCounter != nil {
			prometheus.ViewEventsDroppedCounter.Inc()
		}
	}
}

// Stop drains outstanding events, flushes them and stops the worker.
// Stop must be called at most once.
func (t *Tracker) Stop() {
	close(t.stop)
	<-t.done
}

func (t *Tracker) run() {
	defer close(t.done)

	ticker := time.NewTicker(t.flushInterval)
	defer ticker.Stop()

	pending := make(map[string]int64)

	flush := func() {
		if len(pending) == 0 {
			return
		}
		if err := t.store(pending); err != nil {
			logger.Get().Warn("view count flush failed",
				zap.Int("properties", len(pending)),
				zap.Error(err))
		}
		pending = make(map[string]int64)
	}

	var total int
	for {
		select {
		case id := <-t.events:
			pending[id]++
			total++
			if total >= t.batchSize {
				flush()
				total = 0
			}
		case <-ticker.C:
			flush()
			total = 0
		case <-t.stop:
			// drain what is already buffered, then do the final flush
			for {
				select {
				case id := <-t.events:
					pending[id]++
				default:
					flush()
					return
				}
			}
		}
	}
}
