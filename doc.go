// Package tabular turns the whitespace-aligned tables printed by command-line
// tools (docker ps, netstat, ss, ps) into ordered key-value records.
//
// Such tables have no delimiter. Column edges are inferred from the header
// line and checked against every data line.
//
// # Inference
//
// [Infer] runs the pipeline on a slice of lines:
//
//   - Lines made only of '-', '+' and whitespace are dropped, so ASCII-art
//     borders and blank lines disappear.
//   - The divider is '|' when the header has more than one '|', otherwise
//     a space.
//   - "x:y" in the header becomes "x y", which lets ss-style
//     "Address:Port" headers split into two columns.
//   - Every place in the header where a divider run ends is a left edge
//     candidate; every place where a text run ends is a right edge
//     candidate. A candidate is kept only if it holds for all data lines.
//   - A right column whose start has content in every line is split at the
//     first offset where every line has the divider.
//   - Repeated header names get "_1", "_2", ... suffixes.
//
// The result is a [Layout]; [Layout.Extract] slices data lines into
// [Record] values. [Parse] does both.
//
// # Input
//
// [ParseFile] and [ParseReader] read the whole input first. "-" names
// standard input. [WithSkip] drops leading lines; without it a single banner
// line above the header is detected and dropped.
//
// # Errors
//
// Input that does not look tabular yields a [*MalformedTableError], which
// wraps [ErrMalformedTable]. A table with no non-empty cell yields no
// records and no error.
//
// # Limitations
//
// Two columns separated by a single space in every row, with no wider gap
// in the header, are read as one column.
package tabular
