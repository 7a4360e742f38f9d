package machine

import (
	"github.com/ezrec/ndcpu/translate"
)

var f = translate.From

// ErrUnknownCommand is a command line that is not part of the vocabulary.
type ErrUnknownCommand string

func (eu ErrUnknownCommand) Error() string {
	return f("unknown command: %v", string(eu))
}

// ErrOpcode is an opcode value outside the instruction set.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", Opcode(eo).String())
}
