package format

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate[T any](w io.Writer, tmplStr string, items []T) error {
	tmpl, err := template.New("").Option("missingkey=zero").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, item := range items {
		var data any = item
		if m, ok := any(item).(Mapper); ok {
			data = m.Map()
		}
		if err := tmpl.Execute(w, data); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
