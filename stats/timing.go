package stats

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spenczar/tdigest"
)

// Timing records durations: count, total and max exactly,
// and p50/p95/p99 approximately through a t-digest.
// concurrency-safe
type Timing struct {
	sync.Mutex
	count int
	total time.Duration
	max   time.Duration
	td    *tdigest.TDigest
}

func NewTiming(name string) *Timing {
	return registry.getOrAdd(name, &Timing{
		td: tdigest.New(),
	}).(*Timing)
}

func (t *Timing) Value(dur time.Duration) {
	t.Lock()
	t.count++
	t.total += dur
	if dur > t.max {
		t.max = dur
	}
	t.td.Add(float64(dur), 1)
	t.Unlock()
}

// Since records the time elapsed since pre.
func (t *Timing) Since(pre time.Time) {
	t.Value(time.Since(pre))
}

func (t *Timing) Count() int {
	t.Lock()
	defer t.Unlock()
	return t.count
}

// Quantile returns the approximate q-quantile, or 0 if nothing was recorded.
func (t *Timing) Quantile(q float64) time.Duration {
	t.Lock()
	defer t.Unlock()
	if t.count == 0 {
		return 0
	}
	return time.Duration(t.td.Quantile(q))
}

func (t *Timing) Fields() log.Fields {
	t.Lock()
	defer t.Unlock()
	if t.count == 0 {
		return log.Fields{"count": 0}
	}
	return log.Fields{
		"count": t.count,
		"mean":  time.Duration(float64(t.total) / float64(t.count)),
		"p50":   time.Duration(t.td.Quantile(0.50)),
		"p95":   time.Duration(t.td.Quantile(0.95)),
		"p99":   time.Duration(t.td.Quantile(0.99)),
		"max":   t.max,
	}
}
