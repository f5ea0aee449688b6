// Package prompt implements interactive line prompts on the console.
package prompt

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"go.trai.ch/zerr"
)

// LinePrompter writes a question and reads one line of input.
type LinePrompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// New creates a LinePrompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *LinePrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt writes question and returns the answer with surrounding whitespace
// removed. End of input counts as an empty answer.
func (p *LinePrompter) Prompt(question string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := io.WriteString(p.out, question+" "); err != nil {
		return "", zerr.Wrap(err, "failed to write prompt")
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", zerr.Wrap(err, "failed to read answer")
	}

	return strings.TrimSpace(line), nil
}
