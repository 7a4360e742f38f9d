// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ezrec/ndcpu/branch"
	"github.com/ezrec/ndcpu/internal"
	"github.com/ezrec/ndcpu/translate"
)

const (
	DEFAULT_WIDTH = 6 // Register width used when none is given.
)

// banner lists the commands, printed at startup unless quiet.
var banner = []string{
	"Hello World from the first nondeterministic 1 bit CPU!",
	"",
	"You can use the following commands:",
	" reset - resets the machine to a predefined state",
	" set 0 - accumulator := 0",
	" set 1 - accumulator := 1",
	" set x - accumulator := 0 and 1 simultaneously",
	" write - head := accumulator",
	" read - accumulator := head",
	" and - accumulator := accumulator & head",
	" or - accumulator := accumulator | head",
	" xor - accumulator := accumulator ^ head",
	" eq - accumulator := accumulator <=> head",
	" imp - accumulator := accumulator => head (equals !accumulator | head)",
	" not - accumulator := ^accumulator",
	" rol - rotate the stack to the left",
	" ror - rotate the stack to the right",
	" outand - output 1 if all of the accumulators contains a 1",
	" outor - output 1 if any of the accumulators contains a 1",
	" if - only keep those states that have accumulator == 1 (quantum kill switch)",
	" quiet - turn on quiet mode",
	" !quiet - turn off quiet mode",
	"",
}

// Result of a single opcode.
type Result struct {
	Opcode   Opcode // Executed opcode.
	HasValue bool   // Set for queries.
	Value    bool   // Query output.
}

// String renders the query output as the REPL prints it.
func (res Result) String() string {
	if !res.HasValue {
		return ""
	}
	if res.Value {
		return "1"
	}
	return "0"
}

// Machine state: one branch set and the session toggles.
type Machine struct {
	Verbose     bool        // If set, every transition is logged.
	Quiet       bool        // If set, branches are not printed.
	*branch.Set             // Branch set of the session.
	Output      io.Writer   // Destination of dumps and query bits.
	Logger      *zap.Logger // Verbose log destination.
}

// NewMachine creates a machine of the given register width, reset to the
// all-zero configuration.
func NewMachine(width uint) (m *Machine, err error) {
	set, err := branch.New(width)
	if err != nil {
		return
	}

	m = &Machine{
		Set:    set,
		Output: io.Discard,
		Logger: zap.NewNop(),
	}

	return
}

// Execute applies a single opcode.
func (m *Machine) Execute(op Opcode) (res Result, err error) {
	if m.Verbose {
		m.Set.Logger = m.Logger
	} else {
		m.Set.Logger = nil
	}

	res.Opcode = op

	switch op {
	case OP_RESET:
		m.Set.Reset()
	case OP_SET_0:
		m.Set.Set0()
	case OP_SET_1:
		m.Set.Set1()
	case OP_SET_X:
		m.Set.SetX()
	case OP_READ:
		m.Set.Read()
	case OP_WRITE:
		m.Set.Write()
	case OP_AND:
		m.Set.And()
	case OP_OR:
		m.Set.Or()
	case OP_XOR:
		m.Set.Xor()
	case OP_EQ:
		m.Set.Eq()
	case OP_IMP:
		m.Set.Imp()
	case OP_NOT:
		m.Set.Not()
	case OP_ROL:
		m.Set.RotateLeft()
	case OP_ROR:
		m.Set.RotateRight()
	case OP_OUTAND:
		res.HasValue = true
		res.Value = m.Set.OutAnd()
	case OP_OUTOR:
		res.HasValue = true
		res.Value = m.Set.OutOr()
	case OP_IF:
		m.Set.SelectIf()
	case OP_QUIET:
		m.Quiet = true
	case OP_QUIET_OFF:
		m.Quiet = false
	default:
		err = ErrOpcode(op)
	}

	return
}

// Exec runs one command line the way the REPL does: the query bit of
// outand/outor is printed, then the branches unless quiet. An unknown
// command is reported on the output, leaves the branches untouched and is
// returned as ErrUnknownCommand.
func (m *Machine) Exec(line string) (err error) {
	op, err := ParseOpcode(line)
	if err != nil {
		m.Logger.Debug("unknown command", zap.String("line", line))
		_, err = translate.Fprintln(m.Output, "unknown command: %v", line)
		if err == nil {
			err = ErrUnknownCommand(line)
		}
	} else {
		var res Result
		res, err = m.Execute(op)
		if err != nil {
			return
		}
		if res.HasValue {
			_, err = translate.Fprintln(m.Output, "%v", res.String())
			if err != nil {
				return
			}
		}
	}

	if !m.Quiet {
		dumpErr := m.Dump()
		if dumpErr != nil {
			err = dumpErr
		}
	}

	return
}

// Lines returns the iterator of formatted active branches, ascending.
func (m *Machine) Lines() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for addr := range m.Set.All() {
			if !yield(m.Set.Format(addr)) {
				return
			}
		}
	}
}

// Dump writes every active branch, one per line, followed by an empty line.
func (m *Machine) Dump() (err error) {
	return m.writeLines(internal.IterSeqConcat(m.Lines(), slices.Values([]string{""})))
}

// Preamble returns the startup text: banner, then the initial branches.
func (m *Machine) Preamble() iter.Seq[string] {
	lines := make([]string, 0, len(banner)+1)
	for _, line := range banner {
		if len(line) != 0 {
			line = f(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, f("Starting with initial state:"))

	return internal.IterSeqConcat(slices.Values(lines), m.Lines(), slices.Values([]string{""}))
}

// WritePreamble writes the preamble unless quiet.
func (m *Machine) WritePreamble() (err error) {
	if m.Quiet {
		return
	}

	return m.writeLines(m.Preamble())
}

func (m *Machine) writeLines(lines iter.Seq[string]) (err error) {
	w := bufio.NewWriter(m.Output)
	for line := range lines {
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}
	return w.Flush()
}

// inputLine is one line read by readLines, or the error that ended input.
type inputLine struct {
	line string
	err  error
}

// readLines feeds the lines of input, without their line endings, until EOF,
// a read error or ctx is done. Lines have no length limit.
func readLines(ctx context.Context, input io.Reader) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		r := bufio.NewReader(input)
		for {
			text, err := r.ReadString('\n')
			if len(text) != 0 {
				text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
				select {
				case lines <- inputLine{line: text}:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case lines <- inputLine{err: err}:
					case <-ctx.Done():
					}
				}
				return
			}
		}
	}()

	return lines
}

// Run reads command lines from input until EOF or until ctx is done.
// Unknown commands are reported inline and do not stop the session.
//
// Cancelling ctx returns at once, even while waiting for input; the reader
// goroutine then exits on its next line or at EOF.
func (m *Machine) Run(ctx context.Context, input io.Reader) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, input)
	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-lines:
			if !ok {
				return nil
			}
			if in.err != nil {
				return in.err
			}

			err = m.Exec(in.line)
			var eu ErrUnknownCommand
			if errors.As(err, &eu) {
				err = nil
			}
			if err != nil {
				return
			}
		}
	}
}
