package tabular

import (
	"fmt"
	"strings"

	"github.com/bjaus/tabular/internal/logging"
	"github.com/samber/lo"
)

// Divider is the rune that visually separates columns.
type Divider rune

const (
	DividerSpace Divider = ' '
	DividerBar   Divider = '|'
)

// String returns the divider as a one-character string.
func (d Divider) String() string { return string(rune(d)) }

// Justification records which edge of a column was detected.
type Justification int

const (
	// Left columns are found at their starting edge.
	Left Justification = iota
	// Right columns are found at their ending edge.
	Right
)

func (j Justification) String() string {
	if j == Right {
		return "right"
	}
	return "left"
}

// Unbounded marks the End of the last span, which runs to end of line.
const Unbounded = -1

// Span is a half-open [Start, End) rune range within a line.
type Span struct {
	Start int
	End   int
	Just  Justification
}

func (s Span) String() string {
	if s.End == Unbounded {
		return fmt.Sprintf("[%d,)%s", s.Start, s.Just)
	}
	return fmt.Sprintf("[%d,%d)%s", s.Start, s.End, s.Just)
}

// cut returns the part of l covered by s, clamped to the line length.
func (s Span) cut(l []rune) string {
	start := min(s.Start, len(l))
	end := len(l)
	if s.End != Unbounded {
		end = min(s.End, len(l))
	}
	if end < start {
		return ""
	}
	return string(l[start:end])
}

// Layout is the column schema inferred for one table. It is not modified
// after [Infer] returns it.
type Layout struct {
	Divider Divider
	Spans   []Span
	// Header holds the trimmed header text of each span.
	Header []string
	// Keys holds the unique record key of each span. Unnamed spans have an
	// empty key and never appear in records.
	Keys []string
}

// Infer sanitizes lines and infers the column layout. The first remaining
// line is the header; every later line is data.
func Infer(lines []string) (*Layout, error) {
	layout, _, err := infer(lines)
	return layout, err
}

// Parse infers the layout of lines and extracts one record per data line.
func Parse(lines []string) ([]Record, error) {
	layout, rows, err := infer(lines)
	if err != nil {
		return nil, err
	}
	return layout.Extract(rows), nil
}

// infer returns the layout along with the sanitized data lines.
func infer(lines []string) (*Layout, []string, error) {
	kept, div := sanitize(lines)
	if len(kept) < 2 {
		return nil, nil, malformed(len(kept), "need a header and at least one data line")
	}
	header := []rune(normalizeHeader(kept[0]))
	rows := lo.Map(kept[1:], func(l string, _ int) []rune { return []rune(l) })

	d := rune(div)
	leftCands, rightCands := leftCandidates(header, d), rightCandidates(header, d)
	left := lo.Filter(leftCands, func(b, _ int) bool { return validLeft(rows, d, b) })
	right := lo.Filter(rightCands, func(b, _ int) bool { return validRight(rows, d, b) })
	if len(left) == 0 && len(right) == 0 {
		return nil, nil, malformed(len(kept), "no column boundary holds for every row")
	}

	all := append([][]rune{header}, rows...)
	spans := splitGlued(mergeBoundaries(left, right), all, d)

	texts := lo.Map(spans, func(s Span, _ int) string { return strings.TrimSpace(s.cut(header)) })
	layout := &Layout{
		Divider: div,
		Spans:   spans,
		Header:  texts,
		Keys:    dedupeKeys(texts),
	}
	logging.Logger().Debug("inferred layout",
		"divider", div.String(),
		"left_candidates", leftCands,
		"right_candidates", rightCands,
		"left", left,
		"right", right,
		"spans", lo.Map(spans, func(s Span, _ int) string { return s.String() }),
		"keys", layout.Keys,
	)
	return layout, kept[1:], nil
}
