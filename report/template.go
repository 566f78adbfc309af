package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// DefaultTemplate prints one tab separated line per row.
const DefaultTemplate = `{{.Generator}}\t{{.Count}}\t{{f .Mean}}\t{{f .StdDev}}\t{{f .Min}}\t{{f .Max}}\n`

// Template executes a text/template for every row.
// The literal sequences \n and \t in the format are turned into newline and tab,
// so formats can be passed on the command line.
// Rows expose Generator, Count, Mean, StdDev, Min and Max. the function f formats
// a float with 6 decimals.
type Template struct {
	w   io.Writer
	tpl *template.Template
}

func NewTemplate(w io.Writer, format string) (*Template, error) {
	if format == "" {
		format = DefaultTemplate
	}
	format = strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(format)

	funcs := template.FuncMap{
		"f": func(v float64) string { return fmt.Sprintf("%.6f", v) },
	}
	tpl, err := template.New("row").Funcs(funcs).Parse(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadTemplate, err)
	}
	return &Template{w: w, tpl: tpl}, nil
}

func (t *Template) Write(row Row, header bool) error {
	return t.tpl.Execute(t.w, row)
}

func (t *Template) EndGroup() error {
	return nil
}
