package fmtstream

import (
	"iter"
	"slices"
)

// Separated renders each item's own form joined by a literal separator. No
// brackets or quoting are added.
type Separated[T any] struct {
	Items iter.Seq[T]
	Sep   string
	Fn    func(T) Streamable
}

// Join renders items separated by sep.
func Join[T Streamable](sep string, items ...T) Separated[T] {
	return Separated[T]{
		Items: slices.Values(items),
		Sep:   sep,
		Fn:    func(v T) Streamable { return v },
	}
}

// JoinFunc renders fn(item) for each item, separated by sep.
func JoinFunc[T any](sep string, items []T, fn func(T) Streamable) Separated[T] {
	return Separated[T]{Items: slices.Values(items), Sep: sep, Fn: fn}
}

// JoinSeq is like [JoinFunc] but reads items from a sequence.
func JoinSeq[T any](sep string, items iter.Seq[T], fn func(T) Streamable) Separated[T] {
	return Separated[T]{Items: items, Sep: sep, Fn: fn}
}

// StreamTo implements [Streamable].
func (l Separated[T]) StreamTo(s *Stream) {
	first := true
	for item := range l.Items {
		if !first {
			_, _ = s.WriteString(l.Sep)
		}
		first = false
		s.Put(l.Fn(item))
	}
}

// Lines renders the items of a [Lister] joined by its [Separator], or by a
// newline when it has none.
func Lines(l Lister) Streamable {
	sep := "\n"
	if s, ok := l.(Separator); ok {
		sep = s.Sep()
	}
	return JoinFunc(sep, l.List(), func(v string) Streamable { return Text(v) })
}
