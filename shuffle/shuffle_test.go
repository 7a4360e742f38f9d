// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package shuffle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// spreadSlow moves each 2-bit group of the low half one group at a time.
func spreadSlow(x uint64) (out uint64) {
	for k := range 16 {
		out |= ((x >> (2 * k)) & 0b11) << (4 * k)
	}
	return
}

func TestSpread(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		input    uint64
		expected uint64
	}){
		{0, 0},
		{0b01, 0b01},
		{0b11_10, 0b11_00_10},
		{0xffff_ffff, 0x3333_3333_3333_3333},
		{0xffff_ffff_0000_0000, 0},
		{0x8000_0000, 0x2000_0000_0000_0000},
	}

	for _, entry := range table {
		assert.Equal(entry.expected, Spread(entry.input), "%#x", entry.input)
	}

	rands := rand.New(rand.NewSource(1))
	for range 1000 {
		x := rands.Uint64()
		assert.Equal(spreadSlow(x), Spread(x), "%#x", x)
	}
}

func TestCompact(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint64(0xffff_ffff), Compact(0x3333_3333_3333_3333))
	assert.Equal(uint64(0), Compact(0xcccc_cccc_cccc_cccc))
	assert.Equal(uint64(0b11_10), Compact(0b11_00_10))

	rands := rand.New(rand.NewSource(2))
	for range 1000 {
		x := rands.Uint64()
		assert.Equal(x&lowHalf, Compact(Spread(x)), "%#x", x)
		assert.Equal(x&Stages[len(Stages)-1].Mask, Spread(Compact(x)), "%#x", x)
	}
}

func TestStages(t *testing.T) {
	assert := assert.New(t)

	rands := rand.New(rand.NewSource(3))
	for range 256 {
		x := rands.Uint64() & lowHalf
		for n := range Stages {
			spread := SpreadStage(x, n)
			assert.Equal(x, CompactStage(spread, n), "stage %d %#x", n, x)
			assert.Equal(spread, spread&Stages[n].Mask, "stage %d %#x", n, x)
			x = spread
		}
	}
}

func TestInterleave(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint64(0b10_01), Interleave(0b01, 0b10))
	assert.Equal(^uint64(0), Interleave(0xffff_ffff, 0xffff_ffff))

	rands := rand.New(rand.NewSource(4))
	for range 1000 {
		lo := rands.Uint64()
		hi := rands.Uint64()
		glo, ghi := Deinterleave(Interleave(lo, hi))
		assert.Equal(lo&lowHalf, glo)
		assert.Equal(hi&lowHalf, ghi)

		x := rands.Uint64()
		assert.Equal(x, Interleave(Deinterleave(x)))
	}
}
