package format

import (
	"fmt"
	"io"
	"strings"
)

func writeTable[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	header, rows, err := grid(Table, items)
	if err != nil {
		return err
	}
	widths := computeWidths(header, rows, 0)

	if err := drawHLine(w, widths); err != nil {
		return err
	}
	if err := drawRow(w, header, widths); err != nil {
		return err
	}
	if err := drawHLine(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths); err != nil {
			return err
		}
	}
	return drawHLine(w, widths)
}

func drawHLine(w io.Writer, widths []int) error {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString("|")
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(padCell(cells[i], width))
		sb.WriteString(" |")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
