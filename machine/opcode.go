// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"strings"
)

// Opcode is a single machine or session command.
type Opcode int

//go:generate go tool stringer -type=Opcode
const (
	OP_RESET  = Opcode(iota) // All cells zero, single branch.
	OP_SET_0                 // accumulator := 0
	OP_SET_1                 // accumulator := 1
	OP_SET_X                 // accumulator := 0 and 1 simultaneously
	OP_READ                  // accumulator := head
	OP_WRITE                 // head := accumulator
	OP_AND                   // accumulator := accumulator & head
	OP_OR                    // accumulator := accumulator | head
	OP_XOR                   // accumulator := accumulator ^ head
	OP_EQ                    // accumulator := accumulator <=> head
	OP_IMP                   // accumulator := !accumulator | head
	OP_NOT                   // accumulator := !accumulator
	OP_ROL                   // Rotate the stack to the left.
	OP_ROR                   // Rotate the stack to the right.
	OP_OUTAND                // 1 if every accumulator is 1.
	OP_OUTOR                 // 1 if any accumulator is 1.
	OP_IF                    // Keep only branches with accumulator == 1.
	OP_QUIET                 // Stop printing the branches.
	OP_QUIET_OFF             // Print the branches after every command.
	OP_COUNT                 // Number of opcodes.
)

// commands is the command line text of each opcode.
var commands = [OP_COUNT]string{
	OP_RESET:     "reset",
	OP_SET_0:     "set 0",
	OP_SET_1:     "set 1",
	OP_SET_X:     "set x",
	OP_READ:      "read",
	OP_WRITE:     "write",
	OP_AND:       "and",
	OP_OR:        "or",
	OP_XOR:       "xor",
	OP_EQ:        "eq",
	OP_IMP:       "imp",
	OP_NOT:       "not",
	OP_ROL:       "rol",
	OP_ROR:       "ror",
	OP_OUTAND:    "outand",
	OP_OUTOR:     "outor",
	OP_IF:        "if",
	OP_QUIET:     "quiet",
	OP_QUIET_OFF: "!quiet",
}

// Command returns the command line text of the opcode.
func (op Opcode) Command() string {
	if op < 0 || op >= OP_COUNT {
		return ""
	}
	return commands[op]
}

// Query is true for opcodes that produce an output bit.
func (op Opcode) Query() bool {
	return op == OP_OUTAND || op == OP_OUTOR
}

// ParseOpcode parses a command line. Surrounding whitespace is ignored; the
// rest must match a command exactly.
func ParseOpcode(line string) (op Opcode, err error) {
	text := strings.TrimSpace(line)
	for n, command := range commands {
		if command == text {
			op = Opcode(n)
			return
		}
	}

	err = ErrUnknownCommand(line)
	return
}
