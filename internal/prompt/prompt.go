package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter runs the interactive selection loops over an injectable
// reader/writer pair, so the re-prompt behavior is testable without a
// real terminal. Malformed input is never propagated; the loop keeps
// asking until the input is valid or the source is exhausted.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// SelectIndex prints a numbered list of options and reads a 1-based
// selection, re-prompting with invalidMsg on anything non-numeric or out
// of range. It returns the zero-based index of the choice.
func (p *Prompter) SelectIndex(header, ask, invalidMsg string, options []string) (int, error) {
	fmt.Fprintln(p.out, header)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, opt)
	}

	for {
		fmt.Fprint(p.out, ask)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || n < 1 || n > len(options) {
			fmt.Fprintln(p.out, invalidMsg)
			continue
		}
		return n - 1, nil
	}
}

// SelectToken reads a free-text token, lowercases it, and re-prompts with
// invalidMsg until it matches one of the allowed values.
func (p *Prompter) SelectToken(ask, invalidMsg string, allowed []string) (string, error) {
	for {
		fmt.Fprint(p.out, ask)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		token := strings.ToLower(strings.TrimSpace(line))
		for _, a := range allowed {
			if token == a {
				return token, nil
			}
		}
		fmt.Fprintln(p.out, invalidMsg)
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}
