package litvek

import "iter"

// Chain concatenates the given sequences into a single one, preserving
// argument order. It takes iterable arguments only; use Iter to mix single
// values and spread sources in one list.
func Chain[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// CycleN repeats a sequence n times:
//
//	CycleN(slices.Values([]int{1, 2, 3}), 2)  // 1 2 3 1 2 3
//
// The sequence must be re-rangeable whenever n is greater than one: every
// pass ranges it again from the start, so a single-use sequence would come up
// empty after its first pass. An empty source stays empty no matter how large
// n is, and n of zero produces no values at all.
func CycleN[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
