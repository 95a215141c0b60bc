package fmtstream_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bjaus/fmtstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

// shortWriter accepts at most one byte per call.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return min(len(p), 1), nil }

// flushErrWriter buffers nothing but fails every Flush.
type flushErrWriter struct {
	bytes.Buffer
}

func (*flushErrWriter) Flush() error { return errWriteFailed }

var errWriteFailed = errors.New("write failed")

// ============================================================
// Tests
// ============================================================

func TestMemorySink(t *testing.T) {
	t.Parallel()
	sink := &fmtstream.MemorySink{}
	s := fmtstream.NewSize(sink, 4)
	_, _ = s.WriteString("ab")
	assert.Zero(t, sink.Len())
	_, _ = s.WriteString("cdef")
	assert.Equal(t, "abcdef", string(sink.Bytes()))
	assert.Zero(t, s.Position())
	_, _ = s.WriteString("g")
	s.Flush()
	assert.Equal(t, "abcdefg", string(sink.Bytes()))
	assert.Equal(t, 7, sink.Len())

	sink.Reset()
	assert.Zero(t, sink.Len())
}

func TestMemoryStreamBytesIndependent(t *testing.T) {
	t.Parallel()
	m := fmtstream.NewMemoryStream(16)
	_, _ = m.WriteString("abc")
	got := m.Bytes()
	assert.Equal(t, "abc", string(got))

	_, _ = m.WriteString("def")
	got[0] = 'X'
	assert.Equal(t, "Xbc", string(got))
	assert.Equal(t, "abcdef", m.String())
}

func TestMemoryStreamIsWriter(t *testing.T) {
	t.Parallel()
	m := fmtstream.NewMemoryStream(8)
	n, err := io.Copy(m, strings.NewReader(strings.Repeat("z", 100)))
	require.NoError(t, err)
	assert.EqualValues(t, 100, n)
	assert.Equal(t, strings.Repeat("z", 100), m.String())
}

func TestMarshalEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, fmtstream.Marshal())
}

func TestFprint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := fmtstream.Fprint(&buf, fmtstream.Text("list="), fmtstream.StringList{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, `list=["a","b"]`, buf.String())
}

func TestFprintError(t *testing.T) {
	t.Parallel()
	err := fmtstream.Fprint(&errWriter{}, fmtstream.Text("x"))
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestWriterSinkStickyError(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 1}
	ws := fmtstream.NewWriterSink(w)
	s := fmtstream.NewSize(ws, 2)
	_, _ = s.WriteString("abcdef")
	_, _ = s.WriteString("gh")
	s.Flush()

	assert.ErrorIs(t, ws.Err(), errWriteFailed)
	assert.Equal(t, 1, w.calls)
	assert.EqualValues(t, 6, ws.Written())
}

func TestWriterSinkShortWrite(t *testing.T) {
	t.Parallel()
	ws := fmtstream.NewWriterSink(shortWriter{})
	ws.AcceptChunk([]byte("abc"))
	assert.ErrorIs(t, ws.Err(), io.ErrShortWrite)
	assert.EqualValues(t, 1, ws.Written())
}

func TestWriterSinkFlushesBufio(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	ws := fmtstream.NewWriterSink(bw)
	s := fmtstream.New(ws)
	_, _ = s.WriteString("hello")
	assert.Zero(t, buf.Len())
	s.Flush()
	require.NoError(t, ws.Err())
	assert.Equal(t, "hello", buf.String())
}

func TestWriterSinkFlushError(t *testing.T) {
	t.Parallel()
	w := &flushErrWriter{}
	err := fmtstream.Fprint(w, fmtstream.Text("abc"))
	assert.ErrorIs(t, err, errWriteFailed)
	assert.Equal(t, "abc", w.String())
}
