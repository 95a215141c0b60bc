package fmtstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
	"strconv"
)

// Bool renders as the JSON literal true or false.
type Bool bool

// StreamTo implements [Streamable].
func (b Bool) StreamTo(s *Stream) {
	if b {
		_, _ = s.WriteString("true")
	} else {
		_, _ = s.WriteString("false")
	}
}

// Int renders as decimal text. Values beyond 2^53 are not checked against
// what JSON parsers can represent.
type Int int64

// StreamTo implements [Streamable].
func (i Int) StreamTo(s *Stream) {
	var b [20]byte
	_, _ = s.Write(strconv.AppendInt(b[:0], int64(i), 10))
}

// Uint renders as decimal text.
type Uint uint64

// StreamTo implements [Streamable].
func (u Uint) StreamTo(s *Stream) {
	var b [20]byte
	_, _ = s.Write(strconv.AppendUint(b[:0], uint64(u), 10))
}

// Float renders in the shortest decimal or exponent form that round-trips.
// NaN and infinities come out as NaN, +Inf and -Inf, which are not valid
// JSON.
type Float float64

// StreamTo implements [Streamable].
func (f Float) StreamTo(s *Stream) {
	var b [32]byte
	_, _ = s.Write(strconv.AppendFloat(b[:0], float64(f), 'g', -1, 64))
}

// IsFinite reports whether f renders as a valid JSON number.
func (f Float) IsFinite() bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Quoted renders a string as a JSON string literal.
//
// Escaping works on bytes rather than code points: bytes below 0x20, the
// double quote and the backslash are escaped, everything else (including all
// bytes of multi-byte UTF-8 sequences) is copied as is.
type Quoted string

// StreamTo implements [Streamable].
func (q Quoted) StreamTo(s *Stream) {
	_ = s.WriteByte('"')
	writeEscaped(s, string(q))
	_ = s.WriteByte('"')
}

// StringList renders as a JSON array of strings.
type StringList []string

// StreamTo implements [Streamable].
func (l StringList) StreamTo(s *Stream) {
	writeArray(s, slices.Values(l))
}

// StringMap renders as a flat JSON object. Keys are written in sorted order.
type StringMap map[string]string

// StreamTo implements [Streamable].
func (m StringMap) StreamTo(s *Stream) {
	_ = s.WriteByte('{')
	for i, k := range slices.Sorted(maps.Keys(m)) {
		if i > 0 {
			_ = s.WriteByte(',')
		}
		writeMember(s, k, m[k])
	}
	_ = s.WriteByte('}')
}

// Pairs renders as a flat JSON object, keeping the order of the slice.
// Duplicate keys are written as given.
type Pairs []KeyValue

// StreamTo implements [Streamable].
func (p Pairs) StreamTo(s *Stream) {
	_ = s.WriteByte('{')
	for i, kv := range p {
		if i > 0 {
			_ = s.WriteByte(',')
		}
		writeMember(s, kv.Key, kv.Value)
	}
	_ = s.WriteByte('}')
}

// Object renders the pairs of any [Mappable] as a JSON object.
func Object(m Mappable) Pairs {
	return Pairs(m.Pairs())
}

// List renders a projection of each item as a JSON array of strings.
type List[T any] struct {
	Items iter.Seq[T]
	Fn    func(T) string
}

// Array returns a [List] over items, projecting each through fn.
func Array[T any](items []T, fn func(T) string) List[T] {
	return List[T]{Items: slices.Values(items), Fn: fn}
}

// ArraySeq is like [Array] but reads items from a sequence.
func ArraySeq[T any](items iter.Seq[T], fn func(T) string) List[T] {
	return List[T]{Items: items, Fn: fn}
}

// StreamTo implements [Streamable].
func (l List[T]) StreamTo(s *Stream) {
	writeArray(s, func(yield func(string) bool) {
		for item := range l.Items {
			if !yield(l.Fn(item)) {
				return
			}
		}
	})
}

func writeArray(s *Stream, seq iter.Seq[string]) {
	_ = s.WriteByte('[')
	first := true
	for str := range seq {
		if !first {
			_ = s.WriteByte(',')
		}
		first = false
		Quoted(str).StreamTo(s)
	}
	_ = s.WriteByte(']')
}

func writeMember(s *Stream, key, value string) {
	Quoted(key).StreamTo(s)
	_ = s.WriteByte(':')
	Quoted(value).StreamTo(s)
}

// EncodeJSON writes v to s using encoding/json. HTML characters are not
// escaped and no trailing newline is written. If v implements [Indented] the
// output is indented.
func EncodeJSON(s *Stream, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if ind, ok := v.(Indented); ok {
		enc.SetIndent("", ind.Indent())
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: json: %w", ErrEncode, err)
	}
	_, _ = s.Write(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}))
	return nil
}
