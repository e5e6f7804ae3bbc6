// Package format renders parsed records in multiple output formats.
//
// Supported formats are INI, JSON, JSONAL (JSON array lines), JSONOL (JSON
// object lines), CSV, TSV, YAML, Table, Markdown and GoTemplate. The entry
// points are [Write] and [Marshal], which accept a [Format] constant and
// variadic items of any type. JSON, JSONOL and YAML work on any value; the
// other formats require the items to implement specific interfaces.
//
// # Interface Design
//
//   - [Mappable] → INI, CSV, TSV, Table, Markdown (ordered pairs)
//   - [Headed] → CSV and TSV header row
//   - [Rower] → JSONAL (values)
//   - [Mapper] → GoTemplate data
//
// tabular.Record implements all of them.
//
// # INI
//
// One key=value line per field, with a blank line between items.
//
// # JSON, JSONAL, JSONOL
//
// JSON is a single indented array. JSONAL writes one compact array of
// values per line, JSONOL one compact object per line. HTML characters are
// not escaped, so "0.0.0.0:80->80/tcp" stays readable.
//
// # CSV and TSV
//
// The first item's keys are the header. Later items are laid out under it;
// a key the header lacks fails with [ErrFieldMismatch]. No items, no
// output.
//
// # Table and Markdown
//
// Columns are the union of all keys in first-seen order, padded with
// go-runewidth so wide characters line up. The Table output uses an ASCII
// border that parses back into the same records.
//
// # GoTemplate
//
//	format.Write(os.Stdout, format.GoTemplate(`{{index . "CONTAINER ID"}}`), records...)
//
// # Format Selection
//
// Use [ParseFormat] to convert a CLI flag string into a [Format]:
//
//	f, err := format.ParseFormat(flagValue)
//	format.Write(os.Stdout, f, records...)
//
// # Errors
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrMissingInterface] — items don't implement the required interface
//   - [ErrFieldMismatch] — CSV/TSV item has a key the header lacks
//   - [ErrInvalidTemplate] — invalid go-template syntax
package format
