package tabular

import (
	"strings"

	"github.com/samber/lo"
)

var borderChars = strings.NewReplacer("-", "", "+", "")

// sanitize drops border and blank lines and picks the divider from the
// first line that survives.
func sanitize(lines []string) ([]string, Divider) {
	kept := lo.Reject(lines, func(l string, _ int) bool { return isBorder(l) })
	if len(kept) == 0 {
		return kept, DividerSpace
	}
	return kept, detectDivider(kept[0])
}

// isBorder reports whether l is made of nothing but '-', '+' and
// whitespace. Blank lines count as borders.
func isBorder(l string) bool {
	return strings.TrimSpace(borderChars.Replace(l)) == ""
}

func detectDivider(header string) Divider {
	if strings.Count(header, "|") > 1 {
		return DividerBar
	}
	return DividerSpace
}
