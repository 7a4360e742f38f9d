// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package shuffle implements the perfect shuffle network used to rotate
// addresses across the word/offset boundary of a packed branch set.
//
// The network works on 2-bit groups. Spread moves the 16 groups of the low
// half of a word apart so that group k lands on bit 4k, leaving a 2-bit gap
// after each one. Compact is the exact inverse. Both are a fixed pipeline of
// mask-shift-or stages described by Stages.
package shuffle

// Stage is one step of the network.
type Stage struct {
	Shift uint   // Distance the upper group moves.
	Mask  uint64 // Bits kept after the step when spreading.
}

const lowHalf = 0x0000_0000_ffff_ffff

// Stages is the stride table, in spreading order.
var Stages = [...]Stage{
	{Shift: 16, Mask: 0x0000_ffff_0000_ffff},
	{Shift: 8, Mask: 0x00ff_00ff_00ff_00ff},
	{Shift: 4, Mask: 0x0f0f_0f0f_0f0f_0f0f},
	{Shift: 2, Mask: 0x3333_3333_3333_3333},
}

// SpreadStage applies spreading stage n to x.
func SpreadStage(x uint64, n int) uint64 {
	stage := Stages[n]
	return (x | x<<stage.Shift) & stage.Mask
}

// CompactStage applies the inverse of spreading stage n to x.
func CompactStage(x uint64, n int) uint64 {
	keep := uint64(lowHalf)
	if n > 0 {
		keep = Stages[n-1].Mask
	}
	return (x | x>>Stages[n].Shift) & keep
}

// Spread interleaves the 2-bit groups of the low 32 bits of x with 2-bit
// gaps: group k moves to bit 4k.
func Spread(x uint64) uint64 {
	x &= lowHalf
	for n := range Stages {
		x = SpreadStage(x, n)
	}
	return x
}

// Compact gathers the 2-bit groups at bits 4k of x into the low 32 bits.
// The groups at 4k+2 are discarded.
func Compact(x uint64) uint64 {
	x &= Stages[len(Stages)-1].Mask
	for n := len(Stages) - 1; n >= 0; n-- {
		x = CompactStage(x, n)
	}
	return x
}

// Interleave merges the low halves of two lanes: groups of lo land on 4k,
// groups of hi on 4k+2.
func Interleave(lo, hi uint64) uint64 {
	return Spread(lo) | Spread(hi)<<2
}

// Deinterleave splits x back into the two lanes merged by Interleave.
func Deinterleave(x uint64) (lo, hi uint64) {
	return Compact(x), Compact(x >> 2)
}
