// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script runs Starlark programs against a machine.
//
// Every machine instruction is a builtin. The words that are Starlark
// keywords get a prefix: land, lor, lnot, and select for the kill switch.
// Queries return bools, so a program can branch on them:
//
//	set("x")
//	write()
//	if outor():
//	    print("some branch holds a 1")
package script

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ndcpu/machine"
)

// builtins maps instruction builtins to their opcodes.
var builtins = map[string]machine.Opcode{
	"reset":  machine.OP_RESET,
	"read":   machine.OP_READ,
	"write":  machine.OP_WRITE,
	"land":   machine.OP_AND,
	"lor":    machine.OP_OR,
	"xor":    machine.OP_XOR,
	"eq":     machine.OP_EQ,
	"imp":    machine.OP_IMP,
	"lnot":   machine.OP_NOT,
	"rol":    machine.OP_ROL,
	"ror":    machine.OP_ROR,
	"select": machine.OP_IF,
	"outand": machine.OP_OUTAND,
	"outor":  machine.OP_OUTOR,
}

// Script binds a machine to the Starlark builtins.
type Script struct {
	Machine *machine.Machine
}

// Run executes src against m. src may be a string, []byte or io.Reader, as
// for starlark.ExecFileOptions; if nil, filename is read.
func Run(m *machine.Machine, filename string, src any) (err error) {
	sc := &Script{Machine: m}
	_, err = sc.Exec(filename, src)
	return
}

// Predeclared returns the builtins bound to the machine.
func (sc *Script) Predeclared() starlark.StringDict {
	dict := starlark.StringDict{
		"set":      starlark.NewBuiltin("set", sc.set),
		"exec":     starlark.NewBuiltin("exec", sc.exec),
		"count":    starlark.NewBuiltin("count", sc.count),
		"branches": starlark.NewBuiltin("branches", sc.branches),
		"width":    starlark.NewBuiltin("width", sc.width),
	}

	for name, op := range builtins {
		dict[name] = starlark.NewBuiltin(name, sc.opcode(op))
	}

	return dict
}

// Exec runs the program and returns its globals.
func (sc *Script) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	// First failed print write; later prints are dropped.
	var printErr error
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if printErr == nil {
				_, printErr = fmt.Fprintln(sc.Machine.Output, msg)
			}
		},
	}

	opts := &syntax.FileOptions{
		TopLevelControl: true,
		While:           true,
		GlobalReassign:  true,
	}

	globals, err = starlark.ExecFileOptions(opts, thread, filename, src, sc.Predeclared())
	if err == nil {
		err = printErr
	}
	if err != nil {
		err = &ErrScript{Filename: filename, Err: err}
	}

	return
}

func (sc *Script) execute(op machine.Opcode) (value starlark.Value, err error) {
	res, err := sc.Machine.Execute(op)
	if err != nil {
		return
	}

	if res.HasValue {
		value = starlark.Bool(res.Value)
	} else {
		value = starlark.None
	}

	return
}

func (sc *Script) opcode(op machine.Opcode) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
		if err != nil {
			return nil, err
		}
		return sc.execute(op)
	}
}

// set(v) assigns the accumulator: 0, 1 or "x" for both.
func (sc *Script) set(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v)
	if err != nil {
		return nil, err
	}

	var op machine.Opcode
	switch value := v.(type) {
	case starlark.Int:
		n, ok := value.Int64()
		switch {
		case ok && n == 0:
			op = machine.OP_SET_0
		case ok && n == 1:
			op = machine.OP_SET_1
		default:
			return nil, ErrSetValue(v.String())
		}
	case starlark.Bool:
		op = machine.OP_SET_0
		if value {
			op = machine.OP_SET_1
		}
	case starlark.String:
		if string(value) != "x" {
			return nil, ErrSetValue(v.String())
		}
		op = machine.OP_SET_X
	default:
		return nil, ErrSetValue(v.String())
	}

	return sc.execute(op)
}

// exec(line) runs a raw command line, printing as the REPL does.
func (sc *Script) exec(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var line string
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &line)
	if err != nil {
		return nil, err
	}

	err = sc.Machine.Exec(line)
	if err != nil {
		return nil, err
	}

	return starlark.None, nil
}

// count() is the number of active branches.
func (sc *Script) count(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	return starlark.MakeUint64(sc.Machine.Count()), nil
}

// branches() lists the active branches as binary strings.
func (sc *Script) branches(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	var elems []starlark.Value
	for line := range sc.Machine.Lines() {
		elems = append(elems, starlark.String(line))
	}

	return starlark.NewList(elems), nil
}

// width() is the register width.
func (sc *Script) width(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	return starlark.MakeUint(sc.Machine.Width()), nil
}
