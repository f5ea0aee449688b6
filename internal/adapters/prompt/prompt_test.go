package prompt_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vmb/internal/adapters/prompt"
)

func TestLinePrompter_Prompt(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(" y \na\n"), &out)

	answer, err := p.Prompt("run command [ls] ?")
	require.NoError(t, err)
	assert.Equal(t, "y", answer)

	answer, err = p.Prompt("again?")
	require.NoError(t, err)
	assert.Equal(t, "a", answer)

	assert.Equal(t, "run command [ls] ? again? ", out.String())
}

func TestLinePrompter_EOF(t *testing.T) {
	p := prompt.New(strings.NewReader("n"), &bytes.Buffer{})

	answer, err := p.Prompt("q")
	require.NoError(t, err)
	assert.Equal(t, "n", answer)

	answer, err = p.Prompt("q")
	require.NoError(t, err)
	assert.Empty(t, answer)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestLinePrompter_WriteError(t *testing.T) {
	p := prompt.New(strings.NewReader("y\n"), failingWriter{})

	_, err := p.Prompt("q")
	require.Error(t, err)
}
