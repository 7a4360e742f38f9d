// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package branch

import (
	"github.com/ezrec/ndcpu/shuffle"
)

// RotateLeft rotates address bits 1..width-1 one place towards the top of
// the address. The top bit becomes the new head; the accumulator stays.
func (set *Set) RotateLeft() {
	set.update("rol", rotateLeft)
}

// RotateRight is the inverse of RotateLeft.
func (set *Set) RotateRight() {
	set.update("ror", rotateRight)
}

func rotateLeft(words []uint64) []uint64 {
	out := make([]uint64, len(words))

	half := len(words) / 2
	if half == 0 {
		// The top address bit is bit 5 of the only word.
		out[0] = shuffle.Interleave(words[0], words[0]>>32)
		return out
	}

	// The top address bit selects the half, the old bit 5 selects the
	// output word of each pair.
	for n := range half {
		lo, hi := words[n], words[n+half]
		out[2*n] = shuffle.Interleave(lo, hi)
		out[2*n+1] = shuffle.Interleave(lo>>32, hi>>32)
	}

	return out
}

func rotateRight(words []uint64) []uint64 {
	out := make([]uint64, len(words))

	half := len(words) / 2
	if half == 0 {
		lo, hi := shuffle.Deinterleave(words[0])
		out[0] = lo | hi<<32
		return out
	}

	for n := range half {
		even, odd := words[2*n], words[2*n+1]
		evenLo, evenHi := shuffle.Deinterleave(even)
		oddLo, oddHi := shuffle.Deinterleave(odd)
		out[n] = evenLo | oddLo<<32
		out[n+half] = evenHi | oddHi<<32
	}

	return out
}
