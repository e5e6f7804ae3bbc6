package tabular

import "github.com/samber/lo"

// leftCandidates returns 0 and every position in h where a run of dividers
// ends.
func leftCandidates(h []rune, d rune) []int {
	c := []int{0}
	for i := 0; i+1 < len(h); i++ {
		if h[i] == d && h[i+1] != d {
			c = append(c, i+1)
		}
	}
	return c
}

// rightCandidates returns every position in h where a run of non-dividers
// ends and a divider follows.
func rightCandidates(h []rune, d rune) []int {
	var c []int
	for i := 0; i+1 < len(h); i++ {
		if h[i] != d && h[i+1] == d {
			c = append(c, i+1)
		}
	}
	return c
}

// validLeft reports whether every row has content starting exactly at lb.
func validLeft(rows [][]rune, d rune, lb int) bool {
	return lo.EveryBy(rows, func(row []rune) bool {
		if lb >= len(row) {
			return false
		}
		return row[lb] != d && (lb == 0 || row[lb-1] == d)
	})
}

// validRight reports whether every row has content ending exactly at rb.
func validRight(rows [][]rune, d rune, rb int) bool {
	return lo.EveryBy(rows, func(row []rune) bool {
		if rb < 1 || rb >= len(row) {
			return false
		}
		return row[rb-1] != d && row[rb] == d
	})
}

// mergeBoundaries walks the ascending left and right boundaries in position
// order. Each boundary closes the span opened by the previous one and tags it
// with its own justification. On equal positions the left boundary wins.
func mergeBoundaries(left, right []int) []Span {
	var spans []Span
	pos := 0
	closeAt := func(b int, j Justification) {
		if b <= pos {
			return
		}
		spans = append(spans, Span{Start: pos, End: b, Just: j})
		pos = b
	}

	i, k := 0, 0
	for i < len(left) || k < len(right) {
		if k >= len(right) || (i < len(left) && left[i] <= right[k]) {
			if k < len(right) && left[i] == right[k] {
				k++
			}
			closeAt(left[i], Left)
			i++
			continue
		}
		closeAt(right[k], Right)
		k++
	}
	return append(spans, Span{Start: pos, End: Unbounded, Just: Left})
}
