package format

import (
	"encoding/csv"
	"io"
)

func writeCSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	header, err := firstHeader(CSV, items)
	if err != nil {
		return err
	}
	index := headerIndex(header)
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, item := range items {
		row, err := alignRow(header, index, any(item).(Mappable))
		if err != nil {
			return err
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// firstHeader checks the interfaces CSV and TSV need and returns the first
// item's keys.
func firstHeader[T any](f Format, items []T) ([]string, error) {
	h, ok := any(items[0]).(Headed)
	if !ok {
		return nil, missing(f, "Headed", items[0])
	}
	if _, ok := any(items[0]).(Mappable); !ok {
		return nil, missing(f, "Mappable", items[0])
	}
	return h.Header(), nil
}
