package fmtstream

import (
	"github.com/mattn/go-runewidth"
)

// Cell renders text padded to a fixed display width. East Asian wide
// characters count as two columns. Text wider than Width is truncated with
// "..." (or hard-cut when Width is 3 or less). A zero Width disables both
// padding and truncation.
type Cell struct {
	Text  string
	Width int
	Align Alignment
}

// StreamTo implements [Streamable].
func (c Cell) StreamTo(s *Stream) {
	text := c.Text
	if c.Width > 0 && runewidth.StringWidth(text) > c.Width {
		if c.Width <= 3 {
			text = runewidth.Truncate(text, c.Width, "")
		} else {
			text = runewidth.Truncate(text, c.Width, "...")
		}
	}
	pad := c.Width - runewidth.StringWidth(text)
	if pad <= 0 {
		_, _ = s.WriteString(text)
		return
	}
	var left, right int
	switch c.Align {
	case AlignRight:
		left = pad
	case AlignCenter:
		left = pad / 2
		right = pad - left
	default:
		right = pad
	}
	writeSpaces(s, left)
	_, _ = s.WriteString(text)
	writeSpaces(s, right)
}

// Row renders cells separated by sep.
func Row(sep string, cells ...Cell) Separated[Cell] {
	return Join(sep, cells...)
}

func writeSpaces(s *Stream, n int) {
	for range n {
		_ = s.WriteByte(' ')
	}
}
