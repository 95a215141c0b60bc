package fmtstream

import (
	"fmt"
	"iter"
	"text/template"
)

// EncodeTemplate executes tmpl against each item and writes a newline after
// each. A template that fails to parse is reported before anything is
// written.
func EncodeTemplate[T any](s *Stream, tmplStr string, items iter.Seq[T]) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: template: %w", ErrEncode, err)
	}
	for item := range items {
		if err := tmpl.Execute(s, item); err != nil {
			return fmt.Errorf("%w: template: %w", ErrEncode, err)
		}
		_ = s.WriteByte('\n')
	}
	return nil
}
