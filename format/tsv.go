package format

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	header, err := firstHeader(TSV, items)
	if err != nil {
		return err
	}
	index := headerIndex(header)
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, item := range items {
		row, err := alignRow(header, index, any(item).(Mappable))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
