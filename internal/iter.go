package internal

import (
	"iter"
	"math/bits"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// SetBits yields the positions of the set bits in word, lowest first.
func SetBits(word uint64) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for word != 0 {
			pos := uint(bits.TrailingZeros64(word))
			if !yield(pos) {
				return
			}
			word &= word - 1
		}
	}
}
