package format

import (
	"fmt"
	"io"
)

func writeINI[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Mappable); !ok {
		return missing(INI, "Mappable", items[0])
	}
	for i, item := range items {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for k, v := range any(item).(Mappable).All() {
			if _, err := fmt.Fprintf(w, "%s=%s\n", k, v); err != nil {
				return err
			}
		}
	}
	return nil
}
