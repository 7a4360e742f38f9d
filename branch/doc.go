// Package branch implements the packed branch set of the nondeterministic
// 1-bit machine.
//
// A machine of width n has 2^n configurations. Bit 0 of a configuration
// address is the accumulator, bit 1 the head of the stack, and bits 2..n-1
// the deeper stack cells. The set of currently possible configurations is
// kept as one presence bit per configuration, packed into 2^(n-6) words:
// word i bit b stands for configuration (i << 6) | b.
//
// Every instruction rewrites whole words with fixed masks, so the cost of
// an instruction depends only on the width, never on the number of active
// branches. Rotation relabels address bits across the word/offset boundary
// through the perfect shuffle network of package shuffle.
package branch
