// Package experiment runs the generator comparison: every configured variant
// against every configured sample size, each unit summarized and handed to a reporter.
package experiment

import (
	"fmt"
	"time"

	"github.com/grafana/rngstats/errors"
	"github.com/grafana/rngstats/report"
	"github.com/grafana/rngstats/rng"
	"github.com/grafana/rngstats/stats"
	"github.com/grafana/rngstats/summary"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNoVariants = errors.NewBadConfig("no generator variants configured")
	ErrNoSizes    = errors.NewBadConfig("no sample sizes configured")
)

// Config describes which units of work make up a run.
type Config struct {
	Variants []rng.Variant
	Sizes    []int
}

// DefaultConfig is the reference experiment: the three reference variants at 10, 1000 and 100000 values.
func DefaultConfig() Config {
	return Config{
		Variants: rng.Reference(),
		Sizes:    []int{10, 1000, 100000},
	}
}

func (c Config) Validate() error {
	if len(c.Variants) == 0 {
		return ErrNoVariants
	}
	if len(c.Sizes) == 0 {
		return ErrNoSizes
	}
	for _, v := range c.Variants {
		if !v.Valid() {
			return fmt.Errorf("%w: %d", rng.ErrUnsupportedVariant, int(v))
		}
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: %d", rng.ErrNegativeLength, n)
		}
	}
	return nil
}

// Run executes every unit of cfg in order, variants outer and sizes inner.
// The reporter gets the header flag on the first row only, and EndGroup after
// the last size of each variant. Run stops at the first error.
func Run(cfg Config, r report.Reporter) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	unitTiming := stats.NewTiming("experiment.unit")
	units := stats.NewCounter64("experiment.units")
	stats.NewGauge64("experiment.variants").Set(len(cfg.Variants))
	stats.NewGauge64("experiment.sizes").Set(len(cfg.Sizes))

	header := true
	for _, v := range cfg.Variants {
		for _, n := range cfg.Sizes {
			pre := time.Now()
			rec, err := Unit(n, v)
			if err != nil {
				return err
			}
			unitTiming.Since(pre)
			units.Inc()

			log.WithFields(log.Fields{
				"variant": v.Key(),
				"n":       rec.Count,
				"mean":    rec.Mean,
				"stddev":  rec.StdDev,
				"took":    time.Since(pre),
			}).Debug("unit done")

			if err := r.Write(report.Row{Generator: v.String(), Record: rec}, header); err != nil {
				return fmt.Errorf("write row for %s n=%d: %w", v.Key(), n, err)
			}
			header = false
		}
		if err := r.EndGroup(); err != nil {
			return fmt.Errorf("end group for %s: %w", v.Key(), err)
		}
	}
	return nil
}

// Unit draws n values from variant v and summarizes them.
// Values are folded into the record as they are drawn, so memory does not grow with n.
func Unit(n int, v rng.Variant) (summary.Record, error) {
	var acc summary.Accumulator
	if err := rng.Stream(n, v, acc.Observe); err != nil {
		return summary.Empty(), err
	}
	return acc.Record(), nil
}
