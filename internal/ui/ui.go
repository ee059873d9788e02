// Package ui abstracts terminal interaction so screens can be driven by tests.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// UI is what a screen needs from the terminal: prompts, modal-style alerts and
// two-choice confirmations.
type UI interface {
	// Prompt prints a label and reads one line of input.
	Prompt(label string) (string, error)

	// Alert shows a titled message and waits for nothing.
	Alert(title, message string)

	// Confirm shows a two-choice prompt. It returns true only when the user
	// picks the confirm option; unrecognized input counts as cancel.
	Confirm(title, message, cancelLabel, confirmLabel string) (bool, error)

	// Print writes a formatted line.
	Print(format string, args ...any)
}

// Ensure Terminal implements UI
var _ UI = (*Terminal)(nil)

// Terminal implements UI over an input/output stream pair.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Prompt prints the label and reads one trimmed line.
func (t *Terminal) Prompt(label string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", label)

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Alert prints a titled message block.
func (t *Terminal) Alert(title, message string) {
	fmt.Fprintf(t.out, "\n[%s] %s\n\n", title, message)
}

// Confirm prints the message and asks the user to pick one of two options.
func (t *Terminal) Confirm(title, message, cancelLabel, confirmLabel string) (bool, error) {
	fmt.Fprintf(t.out, "\n[%s] %s\n", title, message)
	choice, err := t.Prompt(fmt.Sprintf("1 - %s, 2 - %s", cancelLabel, confirmLabel))
	if err != nil {
		return false, err
	}
	return choice == "2", nil
}

// Print writes one formatted line.
func (t *Terminal) Print(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}
