// Package plc models the controller side of the demonstration: where the
// button state comes from, and the ticking component that applies the latch
// rule once per cycle.
package plc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedInput is returned when a console token is not an integer.
var ErrMalformedInput = errors.New("malformed integer input")

// Console is a line-oriented terminal: integers are read as
// whitespace-separated tokens and prompts are written without a newline.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsole wraps an input stream and an output stream.
func NewConsole(in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Console{
		scanner: scanner,
		out:     out,
	}
}

// Printf writes formatted text to the console output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Out returns the output stream of the console.
func (c *Console) Out() io.Writer {
	return c.out
}

// ReadInt consumes one token. A token that is not an integer is consumed and
// reported as ErrMalformedInput. Exhausted input returns io.EOF.
func (c *Console) ReadInt() (int, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading console: %w", err)
		}

		return 0, io.EOF
	}

	token := c.scanner.Text()

	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, token)
	}

	return v, nil
}
