package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers to interactive questions.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and printing questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next line without its line ending.
// io.EOF is returned only when no input at all was available.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadInt prompts for an integer. ok is false when the answer is not a number.
func (p *Prompter) ReadInt(prompt string) (n int, ok bool, err error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// Confirm asks a yes/no question. If autoApprove is true it returns true without prompting.
func (p *Prompter) Confirm(autoApprove bool, action, details string) (bool, error) {
	if autoApprove {
		return true, nil
	}
	fmt.Fprintf(p.out, "\nWARNING: About to %s\n  Details: %s\n", action, details)
	input, err := p.ReadLine("Are you sure you want to continue? (yes/no): ")
	if err != nil {
		return false, fmt.Errorf("failed to read user confirmation: %w", err)
	}

	input = strings.ToLower(strings.TrimSpace(input))
	return input == "yes" || input == "y", nil
}

// ReadPassword prompts for a password without echo when stdin is a terminal.
func ReadPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return NewPrompter(os.Stdin, os.Stderr).ReadLine(prompt)
	}
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
