package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"textca/internal/sims/elementary"
)

const rangeHint = " ** please enter an integer in the specified range **"

// prompter asks for run settings until it gets a valid answer or input ends.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in *bufio.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out}
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Neighborhood asks which rule size to use: 8-bit (3 cells) or 32-bit (5 cells).
func (p *prompter) Neighborhood() (elementary.Neighborhood, error) {
	for {
		answer, err := p.ask("\nWhich bits rule are you choosing (8-bit or 32-bit)? ")
		if err != nil {
			return 0, err
		}
		n, err := elementary.ParseNeighborhood(answer)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, " ** please enter 8 or 32 **")
	}
}

// Rule asks for a rule number valid for n.
func (p *prompter) Rule(n elementary.Neighborhood) (int64, error) {
	label := "Enter Rule"
	if n == elementary.Neighborhood5 {
		label = "Enter Rule for 32 Bits"
	}
	question := fmt.Sprintf("%s (%d - %d): ", label, elementary.MinRule, n.MaxRule())
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		rule, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			fmt.Fprintf(p.out, "  ** %v\n   please enter an integer in the specified range.\n\n", err)
			continue
		}
		if elementary.ValidateRule(n, rule) != nil {
			fmt.Fprintln(p.out, rangeHint)
			continue
		}
		return rule, nil
	}
}
