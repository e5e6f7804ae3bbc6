package tabular

import (
	"fmt"
	"regexp"

	"github.com/samber/lo"
)

// compoundHeader matches "host:port" style cells, which ss renders as one
// token above a right column followed by a left column.
var compoundHeader = regexp.MustCompile(`(\S):(\S)`)

func normalizeHeader(h string) string {
	return compoundHeader.ReplaceAllString(h, "$1 $2")
}

// dedupeKeys turns header texts into unique keys. A text seen once keeps its
// name; every occurrence of a repeated text gets a 1-based "_n" suffix.
// Empty texts stay empty.
func dedupeKeys(texts []string) []string {
	counts := lo.CountValues(texts)
	seen := make(map[string]int, len(counts))
	keys := make([]string, len(texts))
	for i, t := range texts {
		seen[t]++
		if t == "" || counts[t] == 1 {
			keys[i] = t
			continue
		}
		keys[i] = fmt.Sprintf("%s_%d", t, seen[t])
	}

	// A suffixed key can still clash with a literal header such as "A_2".
	used := make(map[string]bool, len(keys))
	for i, k := range keys {
		if k == "" {
			continue
		}
		base := k
		for n := 2; used[k]; n++ {
			k = fmt.Sprintf("%s_%d", base, n)
		}
		used[k] = true
		keys[i] = k
	}
	return keys
}
