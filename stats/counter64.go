package stats

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

type Counter64 struct {
	val uint64
}

func NewCounter64(name string) *Counter64 {
	return registry.getOrAdd(name, &Counter64{}).(*Counter64)
}

func (c *Counter64) Inc() {
	atomic.AddUint64(&c.val, 1)
}

func (c *Counter64) AddUint64(val uint64) {
	atomic.AddUint64(&c.val, val)
}

func (c *Counter64) Peek() uint64 {
	return atomic.LoadUint64(&c.val)
}

func (c *Counter64) Fields() log.Fields {
	return log.Fields{"counter64": c.Peek()}
}
