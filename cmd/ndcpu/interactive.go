// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ezrec/ndcpu/machine"
)

const maxShown = 32 // Branches listed before eliding the rest.

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	accStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	machine *machine.Machine
	input   textinput.Model
	last    string // Last accepted command.
	result  string // Output bit of the last query.
	err     error
}

func newInteractiveModel(m *machine.Machine) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "set x"
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		machine: m,
		input:   ti,
	}
}

func (im *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

// execute runs one command line against the machine.
func (im *interactiveModel) execute(line string) {
	im.err = nil
	im.result = ""

	op, err := machine.ParseOpcode(line)
	if err != nil {
		im.err = err
		return
	}

	res, err := im.machine.Execute(op)
	if err != nil {
		im.err = err
		return
	}

	im.last = op.Command()
	im.result = res.String()
}

func (im *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return im, tea.Quit

		case "enter":
			line := im.input.Value()
			im.input.Reset()
			if len(strings.TrimSpace(line)) != 0 {
				im.execute(line)
			}
			return im, nil

		case "up":
			im.input.SetValue(im.last)
			im.input.CursorEnd()
			return im, nil
		}
	}

	var cmd tea.Cmd
	im.input, cmd = im.input.Update(msg)
	return im, cmd
}

// renderBranch highlights the head and accumulator columns.
func renderBranch(line string) string {
	n := len(line)
	return line[:n-2] + headStyle.Render(line[n-2:n-1]) + accStyle.Render(line[n-1:])
}

func (im *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(f("Nondeterministic 1 bit CPU")))
	b.WriteString(" ")
	b.WriteString(f("%d bits, %d branches", im.machine.Width(), im.machine.Count()))
	b.WriteString("\n\n")

	if !im.machine.Quiet {
		shown := 0
		for line := range im.machine.Lines() {
			if shown == maxShown {
				b.WriteString(fmt.Sprintf(" ... (%d)\n", im.machine.Count()))
				break
			}
			b.WriteString(renderBranch(line))
			b.WriteString("\n")
			shown++
		}
		b.WriteString("\n")
	}

	if len(im.result) != 0 {
		b.WriteString(resultStyle.Render(fmt.Sprintf("%v: %v", im.last, im.result)))
		b.WriteString("\n")
	}
	if im.err != nil {
		b.WriteString(errorStyle.Render(im.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(im.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(f("enter run • ↑ repeat • esc quit")))

	return b.String()
}

func runInteractive(m *machine.Machine) error {
	p := tea.NewProgram(newInteractiveModel(m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
