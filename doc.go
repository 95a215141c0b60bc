// Package fmtstream writes formatted output through a fixed-size buffer to a
// pluggable destination.
//
// A [Stream] owns a buffer of fixed capacity (default [DefaultCapacity]) and
// hands full chunks to a [Sink]. Small writes are coalesced; large writes
// bypass the buffer so the bytes are not copied twice. Streams are not safe
// for concurrent use and are never flushed implicitly:
//
//	s := fmtstream.New(fmtstream.NewWriterSink(os.Stdout))
//	s.Put(fmtstream.Quoted("hi")).Put(fmtstream.Byte('\n'))
//	s.Flush()
//
// # Sinks
//
// A [Sink] accepts non-empty chunks and is told when a flush completes. The
// package ships three:
//
//   - [MemorySink] — accumulates into a byte slice ([MemoryStream] wraps it)
//   - [WriterSink] — forwards to any [io.Writer] and records the first error
//   - [SinkFunc] — adapts a plain function
//
// # Streamables
//
// Anything implementing [Streamable] can be written with [Stream.Put] or
// [Chain]. Built-in values:
//
//   - [Byte], [Rune], [Text], [Raw], [Runes], [Describe] — verbatim output
//   - [Bool], [Int], [Uint], [Float], [Quoted] — JSON scalars
//   - [StringList], [StringMap], [Pairs], [Object], [Array] — JSON containers
//   - [Join], [JoinFunc], [JoinSeq], [Lines] — separator-joined lists
//   - [Cell], [Row] — display-width aware padding
//   - [Env] — KEY=VALUE lines
//
// Arbitrary Go values can be encoded straight into a stream with
// [EncodeJSON], [EncodeYAML], [EncodeJSONLines], [EncodeCSV] and
// [EncodeTemplate].
//
// # Escaping
//
// [Quoted] escapes byte by byte: control bytes, '"' and '\' are escaped and
// every other byte, including each byte of a multi-byte UTF-8 sequence, is
// copied unchanged.
//
// # Errors
//
// Writes to a Stream cannot fail. Programming errors panic with a sentinel:
//
//   - [ErrSinkNotImplemented] — a sink embedding [UnimplementedSink] without
//     defining AcceptChunk
//   - [ErrNilSink] — [NewSize] called with a nil sink
//
// I/O failures are reported by [WriterSink.Err] and [Fprint]; encoding
// failures by the Encode functions, wrapped with [ErrEncode].
package fmtstream
