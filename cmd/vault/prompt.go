package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	errNoInput        = errors.New("no input")
	errSecretMismatch = errors.New("the two entries do not match")
)

// prompter reads secrets. On a terminal input is not echoed; otherwise one
// line is read per secret, which lets scripts pipe secrets in.
type prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out, reader: bufio.NewReader(in)}
}

func (p *prompter) terminal() (int, bool) {
	f, ok := p.in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// secret prints label and reads one secret.
func (p *prompter) secret(label string) (string, error) {
	if fd, ok := p.terminal(); ok {
		fmt.Fprint(p.out, label)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return string(b), nil
	}

	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", errNoInput
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// newSecret reads a secret that is about to be stored. On a terminal it is
// asked for twice.
func (p *prompter) newSecret(label string) (string, error) {
	first, err := p.secret(label + ": ")
	if err != nil {
		return "", err
	}
	if _, ok := p.terminal(); !ok {
		return first, nil
	}

	second, err := p.secret("Repeat " + strings.ToLower(label) + ": ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errSecretMismatch
	}
	return first, nil
}
