package tabular

import "github.com/samber/lo"

// splitGlued splits right spans that have content at their start in every
// line, header included. Such a span is a left column glued to a right
// column; it is cut at the first offset where every line has the divider.
func splitGlued(spans []Span, lines [][]rune, d rune) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Just != Right || !lo.EveryBy(lines, func(l []rune) bool { return contentAt(l, s.Start, d) }) {
			out = append(out, s)
			continue
		}
		o, ok := splitOffset(lines, s, d)
		if !ok {
			out = append(out, s)
			continue
		}
		out = append(out,
			Span{Start: s.Start, End: o, Just: Left},
			Span{Start: o, End: s.End, Just: Right},
		)
	}
	return out
}

func splitOffset(lines [][]rune, s Span, d rune) (int, bool) {
	for o := s.Start + 1; o < s.End; o++ {
		if lo.EveryBy(lines, func(l []rune) bool { return dividerAt(l, o, d) }) {
			return o, true
		}
	}
	return 0, false
}

// contentAt reports whether l has a non-divider rune at i.
func contentAt(l []rune, i int, d rune) bool {
	return i >= 0 && i < len(l) && l[i] != d
}

// dividerAt reports whether l has the divider at i. Positions past the end
// of l hold no divider.
func dividerAt(l []rune, i int, d rune) bool {
	return i >= 0 && i < len(l) && l[i] == d
}
