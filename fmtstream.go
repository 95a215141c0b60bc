package fmtstream

import (
	"errors"
)

// Sentinel errors for programmatic error handling.
var (
	ErrSinkNotImplemented = errors.New("sink does not implement AcceptChunk")
	ErrNilSink            = errors.New("nil sink")
	ErrEncode             = errors.New("encode failed")
)

// Streamable is implemented by any value that can render itself onto a
// [Stream]. The stream never inspects the concrete type; it only calls
// StreamTo.
type Streamable interface {
	StreamTo(s *Stream)
}

// StreamFunc adapts an ordinary function to [Streamable].
type StreamFunc func(s *Stream)

// StreamTo calls f(s).
func (f StreamFunc) StreamTo(s *Stream) { f(s) }

// Chain writes each value to s in order and returns s.
func Chain(s *Stream, values ...Streamable) *Stream {
	for _, v := range values {
		s.Put(v)
	}
	return s
}

// --- Capability Interfaces ---

// Lister provides a flat list of strings. Rendered by [Lines].
type Lister interface {
	List() []string
}

// Mappable provides key-value pairs in a caller-defined order.
type Mappable interface {
	Pairs() []KeyValue
}

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// --- Optional Interfaces ---

// Indented controls [EncodeJSON] and [EncodeYAML] indentation.
// Without it, JSON is compact and YAML uses its default indent.
type Indented interface {
	Indent() string
}

// Separator controls the delimiter between [Lines] items.
// Default: newline.
type Separator interface {
	Sep() string
}

// Alignment controls text alignment inside a [Cell].
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)
