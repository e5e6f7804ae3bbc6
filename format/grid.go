package format

import (
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

// grid lays items out under the union of their keys, in first-seen order.
func grid[T any](f Format, items []T) ([]string, [][]string, error) {
	if _, ok := any(items[0]).(Mappable); !ok {
		return nil, nil, missing(f, "Mappable", items[0])
	}
	header := lo.Uniq(lo.FlatMap(items, func(item T, _ int) []string {
		var keys []string
		for k := range any(item).(Mappable).All() {
			keys = append(keys, k)
		}
		return keys
	}))
	index := headerIndex(header)
	rows := make([][]string, len(items))
	for i, item := range items {
		row, err := alignRow(header, index, any(item).(Mappable))
		if err != nil {
			return nil, nil, err
		}
		rows[i] = row
	}
	return header, rows, nil
}

func computeWidths(header []string, rows [][]string, minWidth int) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = max(minWidth, runewidth.StringWidth(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func padCell(s string, width int) string {
	return runewidth.FillRight(s, width)
}
