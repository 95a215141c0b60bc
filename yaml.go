package fmtstream

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeYAML writes v to s as a YAML document. If v implements [Indented],
// the length of its indent string sets the indentation width.
func EncodeYAML(s *Stream, v any) error {
	enc := yaml.NewEncoder(s)
	if ind, ok := v.(Indented); ok {
		enc.SetIndent(len(ind.Indent()))
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: yaml: %w", ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: yaml: %w", ErrEncode, err)
	}
	return nil
}
