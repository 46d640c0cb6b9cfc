package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// IterRanges yields every address covered by the ranges, in order.
// A range with End < Begin is walked downwards.
func IterRanges(ranges ...Range) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, r := range ranges {
			step := 1
			if r.End < r.Begin {
				step = -1
			}
			for addr := r.Begin; ; addr += step {
				if !yield(addr) {
					return
				}
				if addr == r.End {
					break
				}
			}
		}
	}
}
