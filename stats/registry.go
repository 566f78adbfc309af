// Package stats keeps process-local instrumentation of a run:
// how many values each generator produced and how long each unit of work took.
// Metrics register themselves by name in a package-level registry and are
// dumped through logrus once the run is over.
package stats

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

var errFmtMetricExists = "fatal: metric %q already exists as type %T"

var registry = NewRegistry()

// Metric is anything the registry can report.
type Metric interface {
	// Fields returns the current values of the metric, keyed by what they are.
	Fields() log.Fields
}

// Registry tracks metrics by name.
// a name can only be used by one metric type.
type Registry struct {
	sync.Mutex
	metrics map[string]Metric
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
	}
}

func (r *Registry) getOrAdd(name string, metric Metric) Metric {
	r.Lock()
	defer r.Unlock()
	if existing, ok := r.metrics[name]; ok {
		if reflect.TypeOf(existing) == reflect.TypeOf(metric) {
			return existing
		}
		panic(fmt.Sprintf(errFmtMetricExists, name, existing))
	}
	r.metrics[name] = metric
	return metric
}

func (r *Registry) list() map[string]Metric {
	metrics := make(map[string]Metric)
	r.Lock()
	for name, metric := range r.metrics {
		metrics[name] = metric
	}
	r.Unlock()
	return metrics
}

func (r *Registry) Clear() {
	r.Lock()
	r.metrics = make(map[string]Metric)
	r.Unlock()
}

// Clear drops all registered metrics. Metrics obtained before the call keep working
// but are no longer reported.
func Clear() {
	registry.Clear()
}

// Snapshot returns the fields of every registered metric, by metric name.
func Snapshot() map[string]log.Fields {
	out := make(map[string]log.Fields)
	for name, metric := range registry.list() {
		out[name] = metric.Fields()
	}
	return out
}

// ReportLog writes every registered metric as one debug line, sorted by name.
func ReportLog(l log.FieldLogger) {
	snap := Snapshot()
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		l.WithFields(snap[name]).WithField("metric", name).Debug("stats")
	}
}
