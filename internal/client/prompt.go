package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are replaced in tests.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// prompter asks the user for input. Prompts go to out so that they never mix
// with command output.
type prompter struct {
	in     *bufio.Reader
	inFile *os.File
	out    io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok {
		p.inFile = f
	}
	return p
}

// Line reads one trimmed line of input.
func (p *prompter) Line(label string) (string, error) {
	line, err := p.readLine(label)
	if err != nil {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", ErrEmptyInput
	}
	return line, nil
}

// Secret reads a line without echo when stdin is a terminal. Surrounding
// whitespace is kept since it may be part of a password.
func (p *prompter) Secret(label string) (string, error) {
	var (
		secret string
		err    error
	)

	if p.inFile != nil && isTerminal(int(p.inFile.Fd())) {
		if _, err = fmt.Fprint(p.out, label); err != nil {
			return "", err
		}
		var raw []byte
		raw, err = readPassword(int(p.inFile.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("error reading %q: %w", strings.TrimSpace(label), err)
		}
		secret = string(raw)
	} else {
		if secret, err = p.readLine(label); err != nil {
			return "", err
		}
	}

	if secret == "" {
		return "", ErrEmptyInput
	}
	return secret, nil
}

// readLine prints label and returns the next line without its terminator.
// A final line without a newline is accepted.
func (p *prompter) readLine(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("error reading %q: %w", strings.TrimSpace(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
