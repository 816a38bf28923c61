package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console is the interactive UI: a Y/n/q prompt on the terminal plus
// rendered chance tables in verbose mode.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	verbose bool
}

// NewConsole builds a console UI reading answers from in and writing
// prompts and tables to out. With verbose set, chance tables are shown
// before each offer.
func NewConsole(in io.Reader, out io.Writer, verbose bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, verbose: verbose}
}

// PromptChoice asks the user about one candidate.
//
// Empty input, "y", and "Y" accept. "q" and "Q" abort, as does end of
// input (the user hit ctrl-d; there is nobody left to ask). Anything
// else declines.
func (c *Console) PromptChoice(choice string) (Response, error) {
	fmt.Fprintf(c.out, "Choice is %s. Accept? (Y/n) ", choice)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(c.out)
			return Abort, nil
		}
		if !errors.Is(err, io.EOF) {
			return Abort, fmt.Errorf("read answer: %w", err)
		}
	}

	switch strings.TrimSpace(line) {
	case "", "y", "Y":
		return Accept, nil
	case "q", "Q":
		return Abort, nil
	default:
		return Decline, nil
	}
}

// Info prints a message to the user.
func (c *Console) Info(message string) {
	fmt.Fprintln(c.out, message)
}

// TablesEnabled reports whether chance tables should be built.
func (c *Console) TablesEnabled() bool {
	return c.verbose
}

// ShowTable renders a chance table to the terminal.
func (c *Console) ShowTable(table Table) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, renderTable(table))
	fmt.Fprintln(c.out)
}
