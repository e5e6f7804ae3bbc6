package tabular

import "strings"

// Extract slices each data line by the layout's spans and returns one record
// per line. A cell is kept only when both its key and its trimmed value are
// non-empty. Lines that keep no cell produce no record.
func (l *Layout) Extract(lines []string) []Record {
	var records []Record
	for _, line := range lines {
		if r := l.extractLine([]rune(line)); r.Len() > 0 {
			records = append(records, r)
		}
	}
	return records
}

func (l *Layout) extractLine(line []rune) Record {
	var r Record
	div := l.Divider.String()
	for i, span := range l.Spans {
		key := l.Keys[i]
		value := strings.TrimSpace(span.cut(line))
		if key == "" || value == "" || strings.HasPrefix(key, div) {
			continue
		}
		if l.Divider == DividerBar && key == "|" {
			continue
		}
		r.Set(key, value)
	}
	return r
}
