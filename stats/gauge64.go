package stats

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

type Gauge64 uint64

func NewGauge64(name string) *Gauge64 {
	u := Gauge64(0)
	return registry.getOrAdd(name, &u).(*Gauge64)
}

func (g *Gauge64) Set(val int) {
	atomic.StoreUint64((*uint64)(g), uint64(val))
}

func (g *Gauge64) Peek() uint64 {
	return atomic.LoadUint64((*uint64)(g))
}

func (g *Gauge64) Fields() log.Fields {
	return log.Fields{"gauge64": g.Peek()}
}
