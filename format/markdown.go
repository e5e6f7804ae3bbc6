package format

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	header, rows, err := grid(Markdown, items)
	if err != nil {
		return err
	}
	header = escapePipes(header)
	for i := range rows {
		rows[i] = escapePipes(rows[i])
	}
	// Minimum 3 so the separator row is valid GFM.
	widths := computeWidths(header, rows, 3)

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = padCell(cells[i], width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapePipes(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}
