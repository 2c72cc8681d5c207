package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// Request describes a single interactive question. An empty answer is a
// legitimate result (the user declined), not an error.
type Request struct {
	Message  string
	Default  string
	Secret   bool
	Validate func(string) error
}

// Asker is the interactive input capability. Implementations suspend until
// the user answers; a dismissed prompt yields the empty string.
type Asker interface {
	Ask(req Request) (string, error)
}

// Denied always declines. Non-interactive contexts (the status API) use it
// so a populate attempt can never block on input.
type Denied struct{}

func (Denied) Ask(Request) (string, error) { return "", nil }

// Terminal asks on the controlling terminal, masking secret input.
type Terminal struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stdout}
}

// Ask prints the message (with the default value when present), reads one
// line, and re-asks while the validator rejects non-empty input. Submitting
// nothing returns the default; EOF is treated as a dismissed prompt.
func (t *Terminal) Ask(req Request) (string, error) {
	for {
		if req.Default != "" && !req.Secret {
			fmt.Fprintf(t.Out, "%s [%s]: ", req.Message, req.Default)
		} else {
			fmt.Fprintf(t.Out, "%s: ", req.Message)
		}

		answer, err := t.readLine(req.Secret)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(t.Out)
				return "", nil
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		answer = strings.TrimSpace(answer)
		if answer == "" {
			answer = req.Default
		}

		if answer != "" && req.Validate != nil {
			if err := req.Validate(answer); err != nil {
				fmt.Fprintf(t.Out, "Invalid value: %v\n", err)
				continue
			}
		}

		return answer, nil
	}
}

func (t *Terminal) readLine(secret bool) (string, error) {
	if secret && t.In == os.Stdin && term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(t.Out)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	if t.reader == nil {
		t.reader = bufio.NewReader(t.In)
	}
	line, err := t.reader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
