// Package prompt implements line-based interactive prompts (yes/no confirm,
// single select, multi-select) over an io.Reader and io.Writer so they can be
// driven by a terminal or by a script in tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Answer errors. Both mean the user did not give a usable answer.
var (
	ErrInvalidAnswer = errors.New("invalid answer")
	ErrNoAnswer      = errors.New("no answer")
)

// IsAnswerError reports whether err came from a missing or unusable answer.
func IsAnswerError(err error) bool {
	return errors.Is(err, ErrInvalidAnswer) || errors.Is(err, ErrNoAnswer)
}

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New returns a Prompter reading from r and writing prompts to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// Confirm asks a yes/no question. An empty answer returns def.
func (p *Prompter) Confirm(message string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.w, "? %s (%s) ", message, hint)

	line, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w %q: expected y or n", ErrInvalidAnswer, line)
	}
}

// Select presents a numbered list and returns the selected index.
func (p *Prompter) Select(message string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, errors.New("select: no choices")
	}
	p.printChoices(message, choices)
	fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(choices))

	line, err := p.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(choices) {
		return 0, fmt.Errorf("%w %q: choose 1-%d", ErrInvalidAnswer, line, len(choices))
	}
	return num - 1, nil
}

// MultiSelect presents a numbered list and accepts a comma or space separated
// list of numbers. A blank answer selects nothing. The returned indices are
// de-duplicated and in presentation order.
func (p *Prompter) MultiSelect(message string, choices []string) ([]int, error) {
	p.printChoices(message, choices)
	fmt.Fprintf(p.w, "Enter numbers separated by commas (blank for none): ")

	line, err := p.readLine()
	if err != nil {
		return nil, fmt.Errorf("reading selection: %w", err)
	}

	seen := make(map[int]bool)
	var picked []int
	for _, field := range strings.FieldsFunc(line, isSeparator) {
		num, err := strconv.Atoi(field)
		if err != nil || num < 1 || num > len(choices) {
			return nil, fmt.Errorf("%w %q: choose 1-%d", ErrInvalidAnswer, field, len(choices))
		}
		if !seen[num-1] {
			seen[num-1] = true
			picked = append(picked, num-1)
		}
	}
	sort.Ints(picked)
	return picked, nil
}

func (p *Prompter) printChoices(message string, choices []string) {
	fmt.Fprintf(p.w, "\n? %s\n", message)
	for i, c := range choices {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, c)
	}
}

// readLine reads one trimmed line. A final line without a newline is accepted.
// When nothing was read the error wraps both ErrNoAnswer and io.EOF.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimSpace(line), nil
			}
			return "", fmt.Errorf("%w: %w", ErrNoAnswer, err)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}
