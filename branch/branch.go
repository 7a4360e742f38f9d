// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package branch

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ezrec/ndcpu/internal"
)

const (
	MinWidth  = 6  // Smallest width; one word of 64 configurations.
	MaxWidth  = 32 // Largest width; 2^26 words.
	WordShift = 6  // Address bits held by the bit offset within a word.
	WordBits  = 1 << WordShift
)

// Set of active configurations of a machine.
type Set struct {
	Logger      *zap.Logger // If set, every transition is logged at debug level.
	BitsFlipped int         // Presence bits changed since the last reset.

	width uint
	words []uint64
}

// New creates a set for a machine of the given width, reset to the
// all-zero configuration.
func New(width uint) (set *Set, err error) {
	if width < MinWidth || width > MaxWidth {
		err = ErrWidth(width)
		return
	}

	set = &Set{
		width: width,
		words: make([]uint64, 1<<(width-WordShift)),
	}

	set.Reset()

	return
}

// Width of the machine, in bits.
func (set *Set) Width() uint {
	return set.width
}

// Words returns a copy of the packed presence words.
func (set *Set) Words() []uint64 {
	words := make([]uint64, len(set.words))
	copy(words, set.words)
	return words
}

// Import replaces the packed presence words.
func (set *Set) Import(words []uint64) (err error) {
	if len(words) != len(set.words) {
		err = &ErrImportLength{Width: set.width, Length: len(words)}
		return
	}

	set.update("import", func(_ []uint64) []uint64 {
		out := make([]uint64, len(words))
		copy(out, words)
		return out
	})

	return
}

// Reset to the single configuration with every cell zero.
func (set *Set) Reset() {
	for n := range set.words {
		set.words[n] = 0
	}
	set.words[0] = 1

	set.BitsFlipped = 0

	set.trace("reset")
}

// Count of active configurations.
func (set *Set) Count() (count uint64) {
	for _, word := range set.words {
		count += uint64(bits.OnesCount64(word))
	}
	return
}

// Empty is true if no configuration is active.
func (set *Set) Empty() bool {
	for _, word := range set.words {
		if word != 0 {
			return false
		}
	}
	return true
}

// Contains is true if the configuration at addr is active.
func (set *Set) Contains(addr uint64) bool {
	index := addr >> WordShift
	if index >= uint64(len(set.words)) {
		return false
	}
	return set.words[index]&(1<<(addr&(WordBits-1))) != 0
}

// All returns the iterator of active configuration addresses, ascending.
func (set *Set) All() iter.Seq[uint64] {
	return func(yield func(addr uint64) bool) {
		for index, word := range set.words {
			base := uint64(index) << WordShift
			for pos := range internal.SetBits(word) {
				if !yield(base | uint64(pos)) {
					return
				}
			}
		}
	}
}

// Format renders a configuration address as width binary digits, most
// significant stack cell first and the accumulator last.
func (set *Set) Format(addr uint64) string {
	digits := strconv.FormatUint(addr, 2)
	if pad := int(set.width) - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return digits
}

// update replaces the words with the result of op, which must return a
// fully formed slice of the same length.
func (set *Set) update(name string, op func(words []uint64) []uint64) {
	old := set.words
	set.words = op(old)

	for n := range old {
		set.BitsFlipped += bits.OnesCount64(old[n] ^ set.words[n])
	}

	set.trace(name)
}

// apply rewrites every word in place with a lane-local transition.
func (set *Set) apply(name string, op func(word uint64) uint64) {
	for n, word := range set.words {
		next := op(word)
		set.BitsFlipped += bits.OnesCount64(word ^ next)
		set.words[n] = next
	}

	set.trace(name)
}

func (set *Set) trace(name string) {
	if set.Logger == nil {
		return
	}

	set.Logger.Debug(name,
		zap.Uint("width", set.width),
		zap.Uint64("branches", set.Count()),
		zap.Int("flipped", set.BitsFlipped),
	)
}
