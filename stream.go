package fmtstream

import (
	"io"
	"iter"
	"unicode/utf8"
)

// DefaultCapacity is the buffer size used by [New].
const DefaultCapacity = 1024

var (
	_ io.Writer       = (*Stream)(nil)
	_ io.ByteWriter   = (*Stream)(nil)
	_ io.StringWriter = (*Stream)(nil)
)

// Stream coalesces writes into chunks of a fixed capacity before handing them
// to a [Sink].
//
// A Stream is not safe for concurrent use. Nothing is flushed automatically:
// bytes still buffered when the Stream is discarded are lost, so callers must
// call [Stream.Flush] when done.
type Stream struct {
	sink Sink
	buf  []byte
	fill int
}

// New returns a stream with [DefaultCapacity] writing to sink.
func New(sink Sink) *Stream {
	return NewSize(sink, DefaultCapacity)
}

// NewSize returns a stream whose buffer holds capacity bytes. A capacity of
// zero or less selects [DefaultCapacity]. It panics if sink is nil.
func NewSize(sink Sink, capacity int) *Stream {
	if sink == nil {
		panic(ErrNilSink)
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stream{sink: sink, buf: make([]byte, capacity)}
}

// Cap returns the buffer capacity.
func (s *Stream) Cap() int { return len(s.buf) }

// Available returns how many bytes can be written before the next flush to
// the sink.
func (s *Stream) Available() int { return len(s.buf) - s.fill }

// Position reports the number of bytes currently buffered. It is not a
// cumulative offset: it drops back to zero whenever the buffer is handed to
// the sink.
func (s *Stream) Position() int { return s.fill }

// WriteByte buffers b, first flushing the buffer to the sink if it is full.
// The error is always nil.
func (s *Stream) WriteByte(b byte) error {
	if s.fill == len(s.buf) {
		s.forward()
	}
	s.buf[s.fill] = b
	s.fill++
	return nil
}

// Write buffers p or forwards it to the sink.
//
// If p fits in the free space it is copied. If the buffer is empty, the
// largest multiple of the capacity is sent to the sink as one chunk and only
// the tail is buffered. Otherwise the buffer is topped up, sent, and the rest
// of p follows as a single direct chunk, regardless of its length.
//
// Write always returns len(p), nil.
func (s *Stream) Write(p []byte) (int, error) {
	n := len(p)
	if n == 0 {
		return 0, nil
	}
	avail := len(s.buf) - s.fill
	switch {
	case n <= avail:
		s.fill += copy(s.buf[s.fill:], p)
	case s.fill == 0:
		direct := n - n%len(s.buf)
		s.sink.AcceptChunk(p[:direct])
		s.fill = copy(s.buf, p[direct:])
	default:
		copy(s.buf[s.fill:], p[:avail])
		s.fill = len(s.buf)
		s.forward()
		s.sink.AcceptChunk(p[avail:])
	}
	return n, nil
}

// WriteString writes str, copying straight from the string when it fits in
// the free space.
func (s *Stream) WriteString(str string) (int, error) {
	if len(str) <= len(s.buf)-s.fill {
		s.fill += copy(s.buf[s.fill:], str)
		return len(str), nil
	}
	return s.Write([]byte(str))
}

// WriteRune writes the UTF-8 encoding of r. Invalid runes are written as
// [utf8.RuneError].
func (s *Stream) WriteRune(r rune) (int, error) {
	if uint32(r) < utf8.RuneSelf {
		_ = s.WriteByte(byte(r))
		return 1, nil
	}
	var enc [utf8.UTFMax]byte
	return s.Write(utf8.AppendRune(enc[:0], r))
}

// WriteSeq writes bytes one at a time. It is the fallback for sources that
// cannot offer a contiguous slice.
func (s *Stream) WriteSeq(seq iter.Seq[byte]) {
	for b := range seq {
		_ = s.WriteByte(b)
	}
}

// Put asks v to render itself onto s and returns s, so calls can be chained:
//
//	s.Put(fmtstream.Text("n=")).Put(fmtstream.Int(3))
func (s *Stream) Put(v Streamable) *Stream {
	v.StreamTo(s)
	return s
}

// Flush hands any buffered bytes to the sink and then notifies it, even when
// nothing was buffered.
func (s *Stream) Flush() {
	if s.fill > 0 {
		s.forward()
	}
	s.sink.OnFlush()
}

func (s *Stream) forward() {
	s.sink.AcceptChunk(s.buf[:s.fill])
	s.fill = 0
}
