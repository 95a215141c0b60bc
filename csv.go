package fmtstream

import (
	"encoding/csv"
	"fmt"
	"iter"
)

// EncodeCSV writes rows as RFC 4180 records separated by comma, or by delim
// when it is non-zero.
func EncodeCSV(s *Stream, rows iter.Seq[[]string], delim rune) error {
	cw := csv.NewWriter(s)
	if delim != 0 {
		cw.Comma = delim
	}
	for row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: csv: %w", ErrEncode, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: csv: %w", ErrEncode, err)
	}
	return nil
}
