// Package machine drives a session of the nondeterministic 1-bit machine.
//
// A Machine owns one branch set for its lifetime. Commands arrive as text
// lines or opcodes, are applied to every branch at once, and after each
// command the active branches are printed unless the session is quiet.
package machine
