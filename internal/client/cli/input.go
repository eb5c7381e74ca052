package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is swapped out in tests so no terminal is needed.
var readPassword = term.ReadPassword

// Prompter reads answers to prompts from an input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line asks for a single line. A final unterminated line is accepted.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Optional is Line for fields that may be left blank. Running out of input
// counts as a blank answer.
func (p *Prompter) Optional(label string) (string, error) {
	v, err := p.Line(label + " (optional)")
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	return v, err
}

// Password reads a password from the terminal without echo. Callers wipe the
// returned slice once done with it.
func (p *Prompter) Password() ([]byte, error) {
	fmt.Fprint(p.out, "Password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}

// Block collects lines until an empty one or end of input and joins them
// with '\n'.
func (p *Prompter) Block(label string) (string, error) {
	fmt.Fprintf(p.out, "%s (finish with an empty line):\n", label)

	var lines []string
	for {
		line, err := p.in.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			lines = append(lines, line)
		}
		if line == "" || err != nil {
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
