package litvek

import (
	"iter"
	"slices"
)

type elementKind uint8

const (
	elementPlain elementKind = iota
	elementRepeat
	elementSpread
)

// Element represents a single entry of a sequence literal: either a plain
// value, appended as a single unit, or a spread source whose yielded values
// are appended one by one, in their native order.
type Element[T any] struct {
	kind elementKind

	one T
	seq iter.Seq[T]

	n    int
	hint int
}

// One creates a plain element holding a single value.
func One[T any](v T) Element[T] {
	return Element[T]{kind: elementPlain, one: v, hint: 1}
}

// Spread creates a spread element backed by an iterator.
func Spread[T any](seq iter.Seq[T]) Element[T] {
	return Element[T]{kind: elementSpread, seq: seq}
}

// SpreadSlice creates a spread element backed by a slice.
func SpreadSlice[T any](xs []T) Element[T] {
	return Element[T]{kind: elementSpread, seq: slices.Values(xs), hint: len(xs)}
}

// Repeat creates an element that expands to n copies of v.
func Repeat[T any](v T, n int) Element[T] {
	return Element[T]{kind: elementRepeat, one: v, n: n, hint: n}
}

// Cycle creates a spread element that expands to the whole sequence, n times
// over. The sequence must be re-rangeable, see CycleN.
func Cycle[T any](seq iter.Seq[T], n int) Element[T] {
	return Element[T]{kind: elementSpread, seq: CycleN(seq, n)}
}

// CycleSlice creates a spread element that expands to the whole slice, n
// times over.
func CycleSlice[T any](xs []T, n int) Element[T] {
	return Element[T]{kind: elementSpread, seq: CycleN(slices.Values(xs), n), hint: len(xs) * n}
}

// Vek builds a slice from the given elements, expanding every spread source
// in place. Elements are expanded in argument order and each spread source is
// drained in its own order, so every spread source must be finite. A call
// with no elements returns an empty slice.
func Vek[T any](elems ...Element[T]) []T {
	out := make([]T, 0, sizeHint(elems))
	for _, el := range elems {
		switch el.kind {
		case elementPlain:
			out = append(out, el.one)
		case elementRepeat:
			for i := 0; i < el.n; i++ {
				out = append(out, el.one)
			}
		case elementSpread:
			for v := range el.seq {
				out = append(out, v)
			}
		}
	}
	return out
}

// Iter returns a lazy iterator over the given elements, expanding every
// spread source in place without materializing intermediate storage. Spread
// sources may be infinite as long as the consumer stops ranging. The result
// is as reusable as the sequences behind its spread elements; collecting it
// yields the same values as Vek on the same element list.
func Iter[T any](elems ...Element[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, el := range elems {
			switch el.kind {
			case elementPlain:
				if !yield(el.one) {
					return
				}
			case elementRepeat:
				for i := 0; i < el.n; i++ {
					if !yield(el.one) {
						return
					}
				}
			case elementSpread:
				for v := range el.seq {
					if !yield(v) {
						return
					}
				}
			}
		}
	}
}

// sizeHint sums the lower bounds known for each element. Spread elements
// built from bare iterators contribute zero.
func sizeHint[T any](elems []Element[T]) int {
	n := 0
	for i := range elems {
		n += elems[i].hint
	}
	return n
}
