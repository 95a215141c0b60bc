package fmtstream

import "fmt"

// Byte renders as the single byte itself.
type Byte byte

// StreamTo implements [Streamable].
func (b Byte) StreamTo(s *Stream) { _ = s.WriteByte(byte(b)) }

// Rune renders as the UTF-8 encoding of the character.
type Rune rune

// StreamTo implements [Streamable].
func (r Rune) StreamTo(s *Stream) { _, _ = s.WriteRune(rune(r)) }

// Text renders a string verbatim.
type Text string

// StreamTo implements [Streamable].
func (t Text) StreamTo(s *Stream) { _, _ = s.WriteString(string(t)) }

// Raw renders a byte slice verbatim.
type Raw []byte

// StreamTo implements [Streamable].
func (r Raw) StreamTo(s *Stream) { _, _ = s.Write(r) }

// Runes renders text held as individual code points, one rune at a time.
type Runes []rune

// StreamTo implements [Streamable].
func (rs Runes) StreamTo(s *Stream) {
	for _, r := range rs {
		_, _ = s.WriteRune(r)
	}
}

// Describe renders whatever v.String returns.
func Describe(v fmt.Stringer) Streamable {
	return StreamFunc(func(s *Stream) {
		_, _ = s.WriteString(v.String())
	})
}
