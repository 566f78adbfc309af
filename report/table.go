package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	headerFmt = "%-20s %8s %15s %15s %15s %15s\n"
	rowFmt    = "%-20s %8d %15.6f %15.6f %15.6f %15.6f\n"
)

// Separator is the line that follows the header and closes each generator's group.
var Separator = strings.Repeat("-", 95) + "\n"

// Table writes fixed-width columns: generator name left-justified in 20,
// count right-justified in 8, and the four statistics in 15 with 6 decimals.
type Table struct {
	w io.Writer
}

func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

func (t *Table) Write(row Row, header bool) error {
	if header {
		_, err := fmt.Fprintf(t.w, headerFmt, "Generator", "n", "mean", "stddev", "min", "max")
		if err != nil {
			return err
		}
		if _, err := io.WriteString(t.w, Separator); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(t.w, rowFmt, row.Generator, row.Count, row.Mean, row.StdDev, row.Min, row.Max)
	return err
}

func (t *Table) EndGroup() error {
	_, err := io.WriteString(t.w, Separator)
	return err
}
