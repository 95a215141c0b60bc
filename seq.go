package fmtstream

import "iter"

// Chan adapts a channel to an [iter.Seq] that ends when the channel is
// closed, so list adapters can render items as they arrive.
func Chan[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// ByteSeq yields the bytes of p one at a time. Paired with [Stream.WriteSeq]
// it exercises the byte-at-a-time write path.
func ByteSeq(p []byte) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, b := range p {
			if !yield(b) {
				return
			}
		}
	}
}
