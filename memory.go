package fmtstream

import (
	"io"
	"slices"
)

var _ Sink = (*MemorySink)(nil)

// MemorySink collects every chunk into a growable byte slice.
type MemorySink struct {
	data []byte
}

// AcceptChunk appends a copy of p.
func (m *MemorySink) AcceptChunk(p []byte) { m.data = append(m.data, p...) }

// OnFlush does nothing.
func (m *MemorySink) OnFlush() {}

// Bytes returns what has been received so far. It does not include bytes
// still buffered in a stream; see [MemoryStream.Bytes].
func (m *MemorySink) Bytes() []byte { return m.data }

// Len returns the number of bytes received.
func (m *MemorySink) Len() int { return len(m.data) }

// Reset discards the received bytes, keeping the allocation.
func (m *MemorySink) Reset() { m.data = m.data[:0] }

// MemoryStream is a [Stream] writing into its own [MemorySink].
type MemoryStream struct {
	*Stream
	sink *MemorySink
}

// NewMemoryStream returns an in-memory stream. See [NewSize] for capacity.
func NewMemoryStream(capacity int) *MemoryStream {
	sink := &MemorySink{}
	return &MemoryStream{Stream: NewSize(sink, capacity), sink: sink}
}

// Bytes flushes and returns a copy of everything written so far. The copy is
// unaffected by later writes.
func (m *MemoryStream) Bytes() []byte {
	m.Flush()
	return slices.Clone(m.sink.Bytes())
}

// String flushes and returns everything written so far.
func (m *MemoryStream) String() string {
	m.Flush()
	return string(m.sink.Bytes())
}

// Marshal renders values in order and returns the bytes.
func Marshal(values ...Streamable) []byte {
	m := NewMemoryStream(DefaultCapacity)
	Chain(m.Stream, values...)
	return m.Bytes()
}

// Fprint renders values in order to w and flushes. It returns the first error
// reported by w.
func Fprint(w io.Writer, values ...Streamable) error {
	ws := NewWriterSink(w)
	s := New(ws)
	Chain(s, values...)
	s.Flush()
	return ws.Err()
}
