package domain

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Command is an external command: an ordered argument vector, a working directory and
// extra environment entries in KEY=VALUE form.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

// NewCommand creates a command running argv[0] with the remaining arguments in dir.
func NewCommand(dir string, argv ...string) Command {
	if len(argv) == 0 {
		return Command{Dir: dir}
	}
	return Command{
		Name: argv[0],
		Args: slices.Clone(argv[1:]),
		Dir:  dir,
	}
}

// Argv returns a copy of the full argument vector including the command name.
func (c Command) Argv() []string {
	if c.Name == "" {
		return nil
	}
	return append([]string{c.Name}, c.Args...)
}

// WithEnv returns a copy of the command with additional environment entries.
func (c Command) WithEnv(env ...string) Command {
	c.Args = slices.Clone(c.Args)
	c.Env = append(slices.Clone(c.Env), env...)
	return c
}

// IsEmpty reports whether the command has nothing to execute.
func (c Command) IsEmpty() bool {
	return c.Name == ""
}

// String renders the command as a shell command line: environment entries as a
// KEY=VALUE prefix, then the argument vector.
func (c Command) String() string {
	argv := c.Argv()
	words := make([]string, 0, len(c.Env)+len(argv))
	for _, entry := range c.Env {
		key, value, _ := strings.Cut(entry, "=")
		words = append(words, key+"="+quoteWord(value))
	}
	for _, arg := range argv {
		words = append(words, quoteWord(arg))
	}
	return strings.Join(words, " ")
}

// plainWord matches words the shell reads back unchanged.
var plainWord = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

func quoteWord(word string) string {
	if plainWord.MatchString(word) {
		return word
	}
	q, err := syntax.Quote(word, syntax.LangBash)
	if err != nil {
		return strconv.Quote(word)
	}
	return q
}
