// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package branch

// Accumulator groups: 2 presence bits per (accumulator) pair.
const (
	acc0 = 0x5555_5555_5555_5555 // accumulator == 0
	acc1 = 0xaaaa_aaaa_aaaa_aaaa // accumulator == 1
)

// Accumulator + head groups: 4 presence bits per (head, accumulator) pair.
const (
	a0h0 = 0x1111_1111_1111_1111
	a1h0 = 0x2222_2222_2222_2222
	a0h1 = 0x4444_4444_4444_4444
	a1h1 = 0x8888_8888_8888_8888
)

// OutAnd is true if every active configuration has the accumulator set.
// An empty set is vacuously true.
func (set *Set) OutAnd() bool {
	for _, word := range set.words {
		if word&acc0 != 0 {
			return false
		}
	}
	return true
}

// OutOr is true if any active configuration has the accumulator set.
func (set *Set) OutOr() bool {
	for _, word := range set.words {
		if word&acc1 != 0 {
			return true
		}
	}
	return false
}

// Set0 clears the accumulator.
func (set *Set) Set0() {
	// 01->01, 10->01
	set.apply("set 0", func(v uint64) uint64 {
		return (v & acc0) | ((v & acc1) >> 1)
	})
}

// Set1 sets the accumulator.
func (set *Set) Set1() {
	// 01->10, 10->10
	set.apply("set 1", func(v uint64) uint64 {
		return (v & acc1) | ((v & acc0) << 1)
	})
}

// SetX splits every branch into accumulator 0 and accumulator 1.
func (set *Set) SetX() {
	// 01->11, 10->11
	set.apply("set x", func(v uint64) uint64 {
		v = (v & acc0) | ((v & acc1) >> 1)
		return v | v<<1
	})
}

// Not complements the accumulator.
func (set *Set) Not() {
	// 01->10, 10->01
	set.apply("not", func(v uint64) uint64 {
		return ((v & acc1) >> 1) | ((v & acc0) << 1)
	})
}

// SelectIf drops every branch whose accumulator is clear.
func (set *Set) SelectIf() {
	set.apply("if", func(v uint64) uint64 {
		return v & acc1
	})
}

// Write copies the accumulator to the head.
func (set *Set) Write() {
	// a1h0->a1h1, a0h1->a0h0
	set.apply("write", func(v uint64) uint64 {
		return (v & (a0h0 | a1h1)) |
			((v & a1h0) << 2) |
			((v & a0h1) >> 2)
	})
}

// Read copies the head to the accumulator.
func (set *Set) Read() {
	// a1h0->a0h0, a0h1->a1h1
	set.apply("read", func(v uint64) uint64 {
		return (v & (a0h0 | a1h1)) |
			((v & a1h0) >> 1) |
			((v & a0h1) << 1)
	})
}

// And sets the accumulator to accumulator & head.
func (set *Set) And() {
	// a1h0->a0h0
	set.apply("and", func(v uint64) uint64 {
		return (v & (a0h0 | a0h1 | a1h1)) |
			((v & a1h0) >> 1)
	})
}

// Or sets the accumulator to accumulator | head.
func (set *Set) Or() {
	// a0h1->a1h1
	set.apply("or", func(v uint64) uint64 {
		return (v & (a0h0 | a1h0 | a1h1)) |
			((v & a0h1) << 1)
	})
}

// Xor sets the accumulator to accumulator ^ head.
func (set *Set) Xor() {
	// a0h1->a1h1, a1h1->a0h1
	set.apply("xor", func(v uint64) uint64 {
		return (v & (a0h0 | a1h0)) |
			((v & a0h1) << 1) |
			((v & a1h1) >> 1)
	})
}

// Eq sets the accumulator to accumulator == head.
func (set *Set) Eq() {
	// a0h0->a1h0, a1h0->a0h0
	set.apply("eq", func(v uint64) uint64 {
		return (v & (a0h1 | a1h1)) |
			((v & a0h0) << 1) |
			((v & a1h0) >> 1)
	})
}

// Imp sets the accumulator to !accumulator | head.
func (set *Set) Imp() {
	// a0h0->a1h0, a1h0->a0h0, a0h1->a1h1
	set.apply("imp", func(v uint64) uint64 {
		return (v & a1h1) |
			((v & a0h0) << 1) |
			((v & a1h0) >> 1) |
			((v & a0h1) << 1)
	})
}
