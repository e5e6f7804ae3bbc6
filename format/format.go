package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrFieldMismatch     = errors.New("field not in header")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	INI      Format = "ini"
	JSON     Format = "json"
	JSONAL   Format = "jsonal"
	JSONOL   Format = "jsonol"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	YAML     Format = "yaml"
	Table    Format = "table"
	Markdown Format = "markdown"
)

const goTemplatePrefix = "go-template="

var formats = []Format{INI, JSON, JSONAL, JSONOL, CSV, TSV, YAML, Table, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders items using a Go text/template.
// Each item is executed against the template and written on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Rower provides the values of an item in column order.
// Required for JSONAL.
type Rower interface {
	Row() []string
}

// Headed provides the keys of an item in column order. The first item's
// keys become the CSV and TSV header.
type Headed interface {
	Header() []string
}

// Mappable iterates over an item's key-value pairs in column order.
// Required for INI, CSV, TSV, Table and Markdown.
type Mappable interface {
	All() iter.Seq2[string, string]
}

// Mapper exposes an item as a plain map. When implemented, GoTemplate
// executes against the map so templates can use {{.KEY}} or
// {{index . "Local Address"}}.
type Mapper interface {
	Map() map[string]string
}

// Write formats items and writes them to w.
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case INI:
		return writeINI(w, items)
	case JSON:
		return writeJSON(w, items)
	case JSONAL:
		return writeJSONAL(w, items)
	case JSONOL:
		return writeJSONOL(w, items)
	case CSV:
		return writeCSV(w, items)
	case TSV:
		return writeTSV(w, items)
	case YAML:
		return writeYAML(w, items)
	case Table:
		return writeTable(w, items)
	case Markdown:
		return writeMarkdown(w, items)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, items)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal formats items and returns the bytes.
func Marshal[T any](f Format, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func missing[T any](f Format, iface string, item T) error {
	return fmt.Errorf("%w: format %q requires %s, not implemented by %T", ErrMissingInterface, f, iface, item)
}

// alignRow places the pairs of m under header. Keys missing from m leave an
// empty cell; keys absent from header are an error.
func alignRow(header []string, index map[string]int, m Mappable) ([]string, error) {
	row := make([]string, len(header))
	for k, v := range m.All() {
		i, ok := index[k]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrFieldMismatch, k)
		}
		row[i] = v
	}
	return row, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}
	return index
}
