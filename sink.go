package fmtstream

import (
	"io"
)

// Sink is the destination a [Stream] hands its bytes to.
//
// AcceptChunk receives a contiguous, non-empty run of bytes. The slice is only
// valid for the duration of the call: the stream reuses the memory behind it
// as soon as AcceptChunk returns, so implementations must copy anything they
// keep.
//
// OnFlush is called at the end of every [Stream.Flush], whether or not any
// bytes were pending.
type Sink interface {
	AcceptChunk(p []byte)
	OnFlush()
}

// UnimplementedSink can be embedded to get a no-op OnFlush. A type that
// embeds it without defining AcceptChunk panics on the first chunk.
type UnimplementedSink struct{}

// AcceptChunk panics with [ErrSinkNotImplemented].
func (UnimplementedSink) AcceptChunk([]byte) { panic(ErrSinkNotImplemented) }

// OnFlush does nothing.
func (UnimplementedSink) OnFlush() {}

// SinkFunc adapts a function to [Sink]. OnFlush is a no-op.
type SinkFunc func(p []byte)

// AcceptChunk calls f(p).
func (f SinkFunc) AcceptChunk(p []byte) { f(p) }

// OnFlush does nothing.
func (f SinkFunc) OnFlush() {}

// flusher matches writers that buffer internally, e.g. *bufio.Writer.
type flusher interface {
	Flush() error
}

var _ Sink = (*WriterSink)(nil)

// WriterSink forwards chunks to an [io.Writer] such as a file or socket.
//
// The first write error is sticky: once set, later chunks are dropped and
// [WriterSink.Err] keeps returning it.
type WriterSink struct {
	w   io.Writer
	n   int64
	err error
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// AcceptChunk writes p to the underlying writer.
func (ws *WriterSink) AcceptChunk(p []byte) {
	if ws.err != nil {
		return
	}
	n, err := ws.w.Write(p)
	if n < 0 || n > len(p) {
		n = 0
	}
	ws.n += int64(n)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	ws.err = err
}

// OnFlush flushes the underlying writer if it buffers on its own.
func (ws *WriterSink) OnFlush() {
	if ws.err != nil {
		return
	}
	if f, ok := ws.w.(flusher); ok {
		ws.err = f.Flush()
	}
}

// Written returns the number of bytes the underlying writer accepted.
func (ws *WriterSink) Written() int64 { return ws.n }

// Err returns the first error encountered, if any.
func (ws *WriterSink) Err() error { return ws.err }
