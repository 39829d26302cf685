// Package prompt reads validated answers from an interactive user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pfrederiksen/nhl-streams/internal/logger"
)

// DefaultMessage is printed before every read
const DefaultMessage = "\n>>> "

// ErrNoInput is returned when input ends before a valid answer was given
var ErrNoInput = errors.New("no input")

// Prompter reads line-oriented answers from in and writes prompts to out.
// Reuse one Prompter for a whole session so buffered input is not lost.
type Prompter struct {
	reader  *bufio.Reader
	out     io.Writer
	message string
}

// New creates a Prompter using DefaultMessage
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader:  bufio.NewReader(in),
		out:     out,
		message: DefaultMessage,
	}
}

// Question describes one answer to collect.
// Parse converts the trimmed line; Valid, when set, must accept the result.
// Hint is printed after a rejected line.
type Question[T any] struct {
	Parse func(string) (T, error)
	Valid func(T) bool
	Hint  string
}

// Ask prompts until a line parses and passes validation. Rejected lines are
// never returned as errors; only read failures and end of input are.
func Ask[T any](p *Prompter, q Question[T]) (T, error) {
	var zero T
	for {
		fmt.Fprint(p.out, p.message)

		raw, err := p.reader.ReadString('\n')
		if err != nil {
			// A last line without a newline is still an answer.
			if !errors.Is(err, io.EOF) {
				return zero, fmt.Errorf("reading input: %w", err)
			}
			if raw == "" {
				return zero, ErrNoInput
			}
		}

		line := strings.TrimSpace(raw)
		value, err := q.Parse(line)
		if err == nil && (q.Valid == nil || q.Valid(value)) {
			return value, nil
		}

		logger.Debug("Rejected input", logger.Fields{"input": line})
		if q.Hint != "" {
			fmt.Fprintln(p.out, q.Hint)
		}
	}
}

// Choose asks for a 1-based menu position between 1 and n and returns the
// matching 0-based index.
func Choose(p *Prompter, n int) (int, error) {
	choice, err := Ask(p, Question[int]{
		Parse: strconv.Atoi,
		Valid: func(v int) bool { return v >= 1 && v <= n },
		Hint:  fmt.Sprintf("Please enter a number from 1 to %d.", n),
	})
	if err != nil {
		return 0, err
	}
	return choice - 1, nil
}
