// Package session runs external commands and local actions behind the run-mode gate.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/vmb/internal/core/ports"
	"go.trai.ch/vmb/internal/ui/output"
	"go.trai.ch/vmb/internal/ui/style"
)

// Session gates every external action of one invocation on its run mode.
// Answering "a" to a confirmation latches always-confirm for the rest of the
// session; the latch is never reset.
type Session struct {
	mode     domain.RunMode
	executor ports.Executor
	prompter ports.Prompter
	logger   ports.Logger
	tracer   ports.Tracer

	stdout io.Writer
	stderr io.Writer
	color  *termenv.Output // nil disables highlighting

	mu            sync.Mutex
	alwaysConfirm bool
}

// Option configures a Session.
type Option func(*Session)

// WithOutput sets the writers external commands inherit.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(s *Session) {
		if stdout != nil {
			s.stdout = stdout
		}
		if stderr != nil {
			s.stderr = stderr
		}
	}
}

// WithColor enables highlighting of log lines and prompts using out.
func WithColor(out *termenv.Output) Option {
	return func(s *Session) {
		s.color = out
	}
}

// New creates a Session for mode.
func New(
	mode domain.RunMode,
	executor ports.Executor,
	prompter ports.Prompter,
	logger ports.Logger,
	tracer ports.Tracer,
	opts ...Option,
) *Session {
	s := &Session{
		mode:     mode,
		executor: executor,
		prompter: prompter,
		logger:   logger,
		tracer:   tracer,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the run mode of the session.
func (s *Session) Mode() domain.RunMode {
	return s.mode
}

// AlwaysConfirm reports whether the always-confirm latch is set.
func (s *Session) AlwaysConfirm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alwaysConfirm
}

// Execute logs cmd and runs it unless the run mode skips it. A skipped command
// is not an error. A failing command returns a *domain.CommandError.
func (s *Session) Execute(ctx context.Context, cmd domain.Command) error {
	if cmd.IsEmpty() {
		return nil
	}

	line := cmd.String()
	run, err := s.confirm(s.paint(line, style.Green))
	if err != nil {
		return err
	}

	s.logCommand(cmd.Dir, line, run)
	if !run {
		return nil
	}

	ctx, span := s.tracer.Start(ctx, cmd.Name,
		ports.WithAttribute("dir", cmd.Dir),
		ports.WithAttribute("argv", cmd.Argv()),
	)
	defer span.End()

	s.beginOutput()
	err = s.executor.Execute(ctx, cmd, s.stdout, s.stderr)
	s.endOutput()

	if err != nil {
		span.RecordError(err)
		return domain.NewCommandError(cmd, err)
	}
	return nil
}

// Call runs fn under the same gate as Execute. It reports whether fn ran.
func (s *Session) Call(ctx context.Context, message string, fn func(context.Context) error) (bool, error) {
	run, err := s.confirm(s.paint(message, style.Green))
	if err != nil {
		return false, err
	}

	verb := "calling"
	if !run {
		verb = s.paint("not", style.Red) + " calling"
	}
	s.logger.Info(fmt.Sprintf("%s [%s]", verb, s.highlight(message, run)))

	if !run {
		return false, nil
	}

	ctx, span := s.tracer.Start(ctx, message)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return true, err
	}
	return true, nil
}

// confirm decides whether the action described by subject runs.
func (s *Session) confirm(subject string) (bool, error) {
	switch s.mode {
	case domain.RunNever:
		return false, nil
	case domain.RunAlways:
		return true, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.alwaysConfirm {
		return true, nil
	}

	answer, err := s.prompter.Prompt(fmt.Sprintf("run command [%s] ? (N)o / (Y)es / (A)lways:", subject))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "", "n":
		return false, nil
	case "a":
		s.alwaysConfirm = true
	}
	return true, nil
}

func (s *Session) logCommand(dir, line string, run bool) {
	verb := "running"
	if !run {
		verb = s.paint("not", style.Red) + " running"
	}

	if dir == "" {
		s.logger.Info(fmt.Sprintf("%s [%s]", verb, s.highlight(line, run)))
		return
	}
	s.logger.Info(fmt.Sprintf("from [%s] %s [%s]", s.highlight(dir, run), verb, s.highlight(line, run)))
}

// highlight colors text yellow for actions that run and green for skipped ones.
func (s *Session) highlight(text string, run bool) string {
	if run {
		return s.paint(text, style.Yellow)
	}
	return s.paint(text, style.Green)
}

func (s *Session) paint(text string, color lipgloss.Color) string {
	return style.Paint(s.color, text, color)
}

// beginOutput switches a terminal stdout to the command output color.
func (s *Session) beginOutput() {
	if !s.colorStdout() {
		return
	}
	seq := s.color.Color(string(style.Cyan)).Sequence(false)
	_, _ = io.WriteString(s.stdout, termenv.CSI+seq+"m")
}

func (s *Session) endOutput() {
	if !s.colorStdout() {
		return
	}
	_, _ = io.WriteString(s.stdout, termenv.CSI+termenv.ResetSeq+"m")
}

func (s *Session) colorStdout() bool {
	return s.color != nil && s.color.Profile != termenv.Ascii && output.IsTerminal(s.stdout)
}
