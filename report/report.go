// Package report renders summary records.
// Reporters are the output boundary of an experiment: they receive finished
// records and never influence how those records are computed.
package report

import (
	"fmt"
	"io"

	"github.com/grafana/rngstats/errors"
	"github.com/grafana/rngstats/summary"
)

// Row is a summary record tagged with the display name of the generator that produced its sample.
type Row struct {
	Generator string
	summary.Record
}

// Reporter receives rows in experiment order.
type Reporter interface {
	// Write outputs one row. header is true for the first row of a run only.
	Write(row Row, header bool) error
	// EndGroup marks the end of all rows for one generator.
	EndGroup() error
}

var (
	ErrUnknownFormat = errors.NewBadConfig("unknown output format")
	ErrBadTemplate   = errors.NewBadConfig("invalid row template")
)

// Formats lists the names accepted by New.
var Formats = []string{"table", "dump", "template"}

// New returns the reporter for the named format, writing to w.
// tpl is only used by the template format.
func New(format, tpl string, w io.Writer) (Reporter, error) {
	switch format {
	case "table":
		return NewTable(w), nil
	case "dump":
		return NewDump(w), nil
	case "template":
		return NewTemplate(w, tpl)
	}
	return nil, fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownFormat, format, Formats)
}
