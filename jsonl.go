package fmtstream

import (
	"encoding/json"
	"fmt"
	"iter"
)

// EncodeJSONLines writes each item as compact JSON followed by a newline.
// It stops at the first item that cannot be encoded; lines already written
// stay in the stream.
func EncodeJSONLines[T any](s *Stream, items iter.Seq[T]) error {
	enc := json.NewEncoder(s)
	enc.SetEscapeHTML(false)
	for item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("%w: jsonl: %w", ErrEncode, err)
		}
	}
	return nil
}
