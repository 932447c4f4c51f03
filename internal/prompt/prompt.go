// Package prompt asks the interactive questions of the CLI on a line-based
// reader.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNoAnswer   = errors.New("no answer")
	ErrNotInteger = errors.New("not an integer")
)

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) ask(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", fmt.Errorf("%q: %w", strings.TrimSpace(question), ErrNoAnswer)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// YesNo reports whether the answer is exactly "y", ignoring case. Any other
// answer, including an empty line or " y", is a no.
func (p *Prompter) YesNo(question string) (bool, error) {
	answer, err := p.ask(question)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

func (p *Prompter) Int(question string) (int, error) {
	answer, err := p.ask(question)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", answer, ErrNotInteger)
	}
	return n, nil
}
