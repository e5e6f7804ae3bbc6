package format

import (
	"encoding/json"
	"io"
)

func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

func writeJSON[T any](w io.Writer, items []T) error {
	if items == nil {
		items = []T{}
	}
	enc := newEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// writeJSONAL writes one array of values per line.
func writeJSONAL[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Rower); !ok {
		return missing(JSONAL, "Rower", items[0])
	}
	enc := newEncoder(w)
	for _, item := range items {
		row := any(item).(Rower).Row()
		if row == nil {
			row = []string{}
		}
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONOL writes one object per line.
func writeJSONOL[T any](w io.Writer, items []T) error {
	enc := newEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
