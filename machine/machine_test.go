// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ezrec/ndcpu/branch"
	"github.com/ezrec/ndcpu/translate"
)

func init() {
	translate.Use("en-US")
}

func newTestMachine(t *testing.T, width uint) (m *Machine, output *bytes.Buffer) {
	m, err := NewMachine(width)
	assert.NoError(t, err)

	output = &bytes.Buffer{}
	m.Output = output
	return
}

func TestMachine(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine(DEFAULT_WIDTH)
	assert.NoError(err)
	assert.False(m.Verbose)
	assert.False(m.Quiet)
	assert.NotNil(m.Set)
	assert.Equal(uint(6), m.Width())
	assert.Equal([]string{"000000"}, slices.Collect(m.Lines()))

	_, err = NewMachine(5)
	var ew branch.ErrWidth
	assert.True(errors.As(err, &ew))
}

func TestParseOpcode(t *testing.T) {
	assert := assert.New(t)

	for op := range OP_COUNT {
		parsed, err := ParseOpcode(op.Command())
		assert.NoError(err, op.String())
		assert.Equal(op, parsed)

		parsed, err = ParseOpcode("  " + op.Command() + "\t\r")
		assert.NoError(err, op.String())
		assert.Equal(op, parsed)
	}

	for _, line := range []string{"", "set", "set  x", "SET X", "Reset", "quiet!", "x"} {
		_, err := ParseOpcode(line)
		assert.Equal(ErrUnknownCommand(line), err, line)
	}

	assert.Equal("OP_SET_X", OP_SET_X.String())
	assert.Equal("Opcode(99)", Opcode(99).String())
	assert.Equal("", Opcode(-1).Command())
	assert.True(OP_OUTOR.Query())
	assert.False(OP_IF.Query())
}

func TestExecute(t *testing.T) {
	assert := assert.New(t)

	m, _ := newTestMachine(t, 6)

	table := [](struct {
		op       Opcode
		branches []string
		result   string
	}){
		{OP_RESET, []string{"000000"}, ""},
		{OP_SET_X, []string{"000000", "000001"}, ""},
		{OP_WRITE, []string{"000000", "000011"}, ""},
		{OP_OUTOR, []string{"000000", "000011"}, "1"},
		{OP_OUTAND, []string{"000000", "000011"}, "0"},
		{OP_ROL, []string{"000000", "000101"}, ""},
		{OP_ROR, []string{"000000", "000011"}, ""},
		{OP_NOT, []string{"000001", "000010"}, ""},
		{OP_IF, []string{"000001"}, ""},
		{OP_OUTAND, []string{"000001"}, "1"},
		{OP_SET_0, []string{"000000"}, ""},
		{OP_IF, nil, ""},
		{OP_OUTAND, nil, "1"},
		{OP_OUTOR, nil, "0"},
		{OP_RESET, []string{"000000"}, ""},
	}

	for _, entry := range table {
		res, err := m.Execute(entry.op)
		assert.NoError(err, entry.op.String())
		assert.Equal(entry.op, res.Opcode)
		assert.Equal(entry.op.Query(), res.HasValue)
		assert.Equal(entry.result, res.String(), entry.op.String())
		assert.Equal(entry.branches, slices.Collect(m.Lines()), entry.op.String())
	}

	_, err := m.Execute(OP_COUNT)
	assert.Equal(ErrOpcode(OP_COUNT), err)

	_, err = m.Execute(OP_QUIET)
	assert.NoError(err)
	assert.True(m.Quiet)
	_, err = m.Execute(OP_QUIET_OFF)
	assert.NoError(err)
	assert.False(m.Quiet)
}

func TestExec(t *testing.T) {
	assert := assert.New(t)

	m, output := newTestMachine(t, 6)

	assert.NoError(m.Exec("set x"))
	assert.Equal("000000\n000001\n\n", output.String())

	output.Reset()
	assert.NoError(m.Exec(" outor "))
	assert.Equal("1\n000000\n000001\n\n", output.String())

	output.Reset()
	err := m.Exec("jump")
	assert.Equal(ErrUnknownCommand("jump"), err)
	assert.Equal("unknown command: jump\n000000\n000001\n\n", output.String())

	output.Reset()
	assert.NoError(m.Exec("quiet"))
	assert.NoError(m.Exec("outand"))
	assert.NoError(m.Exec("if"))
	assert.Equal("0\n", output.String())

	output.Reset()
	assert.NoError(m.Exec("!quiet"))
	assert.Equal("000001\n\n", output.String())
}

func TestPreamble(t *testing.T) {
	assert := assert.New(t)

	m, output := newTestMachine(t, 7)

	assert.NoError(m.WritePreamble())
	text := output.String()
	assert.True(strings.HasPrefix(text, "Hello World from the first nondeterministic 1 bit CPU!\n\n"))
	assert.Contains(text, " if - only keep those states that have accumulator == 1 (quantum kill switch)\n")
	assert.True(strings.HasSuffix(text, "\nStarting with initial state:\n0000000\n\n"))

	output.Reset()
	m.Quiet = true
	assert.NoError(m.WritePreamble())
	assert.Equal("", output.String())
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	m, output := newTestMachine(t, 12)

	session := []string{
		"reset",
		"set x",
		"write",
		"rol",
		"ror",
		"bogus",
		"quiet",
		"outor",
		"outand",
	}

	err := m.Run(context.Background(), strings.NewReader(strings.Join(session, "\n")))
	assert.NoError(err)

	expected := []string{
		"000000000000", "",
		"000000000000", "000000000001", "",
		"000000000000", "000000000011", "",
		"000000000000", "000000000101", "",
		"000000000000", "000000000011", "",
		"unknown command: bogus", "000000000000", "000000000011", "",
		"1",
		"0",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), output.String())
}

func TestRun_Cancel(t *testing.T) {
	assert := assert.New(t)

	m, output := newTestMachine(t, 6)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Run(ctx, strings.NewReader("set x\n"))
	assert.ErrorIs(err, context.Canceled)
	assert.Equal("", output.String())
	assert.Equal(uint64(1), m.Count())
}

func TestRun_CancelWhileWaiting(t *testing.T) {
	assert := assert.New(t)

	m, _ := newTestMachine(t, 6)

	input, feed := io.Pipe()
	defer feed.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx, input)
	}()

	_, err := io.WriteString(feed, "set x\n")
	assert.NoError(err)

	cancel()

	select {
	case err = <-done:
		assert.ErrorIs(err, context.Canceled)
	case <-time.After(5 * time.Second):
		assert.Fail("Run did not return after cancel")
	}
}

func TestRun_LongLine(t *testing.T) {
	assert := assert.New(t)

	m, output := newTestMachine(t, 6)

	junk := strings.Repeat("j", 70000)
	err := m.Run(context.Background(), strings.NewReader(junk+"\nset x\r\n"))
	assert.NoError(err)

	expected := "unknown command: " + junk + "\n000000\n\n000000\n000001\n\n"
	assert.Equal(expected, output.String())
	assert.Equal(uint64(2), m.Count())
}

func TestVerbose(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zap.DebugLevel)

	m, _ := newTestMachine(t, 6)
	m.Logger = zap.New(core)

	_, err := m.Execute(OP_SET_X)
	assert.NoError(err)
	assert.Equal(0, logs.Len())

	m.Verbose = true
	_, err = m.Execute(OP_NOT)
	assert.NoError(err)
	assert.Equal(1, logs.Len())
	assert.Equal("not", logs.All()[0].Message)

	assert.Equal(ErrUnknownCommand("nope"), m.Exec("nope"))
	assert.Equal(1, logs.FilterMessage("unknown command").Len())
}
