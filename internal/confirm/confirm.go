// Package confirm decides whether an existing destination may be overwritten.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"xfetch/internal/ui"
)

// Decider answers the overwrite question for one path.
type Decider interface {
	Confirm(path string) (bool, error)
}

// Prompter asks the user on Out and reads a single line from In.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewPrompter creates a Prompter reading from in and writing the question to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: in, Out: out}
}

// Confirm returns true only when the trimmed answer is exactly "y" or "Y".
// An empty answer, end of input or anything else declines.
func (p *Prompter) Confirm(path string) (bool, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	if _, err := fmt.Fprint(p.Out, ui.Prompt(path)); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// Keep the terminal tidy when input ended without a newline.
		fmt.Fprintln(p.Out)
	}
	return IsYes(response), nil
}

// IsYes reports whether an answer line confirms.
func IsYes(response string) bool {
	switch strings.TrimSpace(response) {
	case "y", "Y":
		return true
	default:
		return false
	}
}

// Always is a scripted Decider that gives the same answer every time.
type Always bool

func (a Always) Confirm(string) (bool, error) {
	return bool(a), nil
}

// Script answers from a fixed list, declining once it runs out. It records
// every path it was asked about.
type Script struct {
	Answers []bool
	Asked   []string
}

func (s *Script) Confirm(path string) (bool, error) {
	s.Asked = append(s.Asked, path)
	if len(s.Answers) == 0 {
		return false, nil
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
