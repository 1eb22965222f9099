// Package prompt reads player names and pin counts from a line-oriented
// terminal. Every question is asked again until the answer is usable; only a
// closed input or a cancelled context ends a loop early.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const (
	minPins = 0
	maxPins = 10
)

var nameRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Console asks questions on out and reads answers from in.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole wraps in and out. Prompts are written to out, which is
// normally stderr so the board on stdout stays clean.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Prompt writes message and returns the next line without its line ending.
// io.EOF is returned once the input is exhausted.
func (c *Console) Prompt(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, message)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Players asks how many people are bowling.
func (c *Console) Players(ctx context.Context) (int, error) {
	for {
		in, err := c.Prompt(ctx, "How many players?: ")
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(in)); err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(c.out, "Enter a number greater than zero.")
	}
}

// Name asks for the name of the player in seat (1-based).
// Names are exactly three english letters and are returned upper-cased.
func (c *Console) Name(ctx context.Context, seat int) (string, error) {
	for {
		in, err := c.Prompt(ctx, fmt.Sprintf("Player %d name (3 english letters)?: ", seat))
		if err != nil {
			return "", err
		}
		in = strings.TrimSpace(in)
		if nameRegex.MatchString(in) {
			return strings.ToUpper(in), nil
		}
		fmt.Fprintln(c.out, "A name is exactly three letters, e.g. ABC.")
	}
}

// Roll asks player for the pins knocked down on a delivery.
func (c *Console) Roll(ctx context.Context, player string, frame, slot int) (int, error) {
	for {
		in, err := c.Prompt(ctx, fmt.Sprintf("%s frame %d roll %d: ", player, frame, slot))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(in))
		if err == nil && n >= minPins && n <= maxPins {
			return n, nil
		}
		fmt.Fprintf(c.out, "Enter a pin count from %d to %d.\n", minPins, maxPins)
	}
}
