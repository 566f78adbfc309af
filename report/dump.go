package report

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// Dump writes every row as a go-spew dump. it is meant for debugging;
// the header flag and group boundaries are ignored.
type Dump struct {
	w   io.Writer
	cfg *spew.ConfigState
}

func NewDump(w io.Writer) *Dump {
	return &Dump{
		w: w,
		cfg: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

func (d *Dump) Write(row Row, header bool) error {
	d.cfg.Fdump(d.w, row)
	return nil
}

func (d *Dump) EndGroup() error {
	return nil
}
