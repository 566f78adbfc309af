// Package logger configures logrus for the rngstats tools.
// Log lines go to stderr so that tables written to stdout can be piped cleanly.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// TextFormatter renders entries as
//
//	2006-01-02 15:04:05.000 [INFO] [module] message key=value key2="quoted value"
//
// with fields sorted by key.
type TextFormatter struct {
	// DisableTimestamp drops the leading timestamp. useful in tests
	// and when output is captured by something that adds its own.
	DisableTimestamp bool

	// TimestampFormat defaults to DefaultTimestampFormat.
	TimestampFormat string

	// ModuleName is printed in brackets after the level, if set.
	ModuleName string

	// QuoteEmptyFields wraps empty string values in quotes.
	QuoteEmptyFields bool
}

// Format renders a single log entry.
// It is meant to be called from github.com/sirupsen/logrus.
func (f *TextFormatter) Format(entry *log.Entry) ([]byte, error) {
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if !f.DisableTimestamp {
		format := f.TimestampFormat
		if format == "" {
			format = DefaultTimestampFormat
		}
		b.WriteString(entry.Time.Format(format))
		b.WriteByte(' ')
	}

	b.WriteByte('[')
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString("] ")

	if f.ModuleName != "" {
		b.WriteByte('[')
		b.WriteString(f.ModuleName)
		b.WriteString("] ")
	}

	b.WriteString(entry.Message)

	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		f.appendValue(b, entry.Data[key])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *TextFormatter) needsQuoting(text string) bool {
	if len(text) == 0 {
		return f.QuoteEmptyFields
	}
	for _, ch := range text {
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '-' || ch == '.' || ch == '/' || ch == '_') {
			return true
		}
	}
	return false
}

func (f *TextFormatter) appendValue(b *bytes.Buffer, value interface{}) {
	var text string
	switch value := value.(type) {
	case string:
		text = value
	case error:
		text = value.Error()
	default:
		fmt.Fprint(b, value)
		return
	}
	if f.needsQuoting(text) {
		fmt.Fprintf(b, "%q", text)
		return
	}
	b.WriteString(text)
}

// Setup points the standard logrus logger at w, using TextFormatter,
// and sets the level parsed from lvl (panic|fatal|error|warning|info|debug).
func Setup(lvl string, w io.Writer) error {
	level, err := log.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("failed to parse log-level: %w", err)
	}
	log.SetOutput(w)
	log.SetFormatter(&TextFormatter{TimestampFormat: DefaultTimestampFormat})
	log.SetLevel(level)
	return nil
}
