// Package collector discovers the project's Python unit tests and runs them.
package collector

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/vmb/internal/core/ports"
	"go.trai.ch/zerr"
)

// TestDir is where tests live, relative to the project directory.
const TestDir = "test/python"

// MatchAll is the pattern used when none is given.
const MatchAll = "."

//go:embed runner.py
var runnerScript string

// Collector runs discovered tests through the interpreter.
type Collector struct {
	executor ports.Executor
	logger   ports.Logger
}

// New creates a Collector.
func New(executor ports.Executor, logger ports.Logger) *Collector {
	return &Collector{
		executor: executor,
		logger:   logger,
	}
}

// NormalizePattern applies the default pattern and strips a trailing ".py", so a
// file name selects the tests of its module.
func NormalizePattern(pattern string) string {
	if pattern == "" {
		return MatchAll
	}
	return strings.TrimSuffix(pattern, ".py")
}

// Runner modes.
const (
	modeList = "list"
	modeRun  = "run"
)

// listing is what the runner prints in list mode.
type listing struct {
	Tests []struct {
		ID     string `json:"id"`
		Module string `json:"module"`
		Match  bool   `json:"match"`
	} `json:"tests"`
	PatternError string `json:"pattern_error"`
}

// Collect imports every module below the project's test directory with
// interpreter and returns the test cases whose id pattern matches anywhere, in
// Python regular expression syntax. Discovery only reads, so it is not gated by
// the run mode.
func (c *Collector) Collect(ctx context.Context, interpreter, projectDir, pattern string) ([]domain.TestCase, error) {
	pattern = NormalizePattern(pattern)
	testDir := filepath.Join(projectDir, TestDir)

	modules, err := Modules(testDir)
	if err != nil || len(modules) == 0 {
		return nil, err
	}

	argv := append([]string{interpreter, "-c", runnerScript, modeList, testDir, pattern}, modules...)

	var stdout, stderr bytes.Buffer
	if err := c.executor.Execute(ctx, domain.NewCommand(projectDir, argv...), &stdout, &stderr); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrTestDiscoveryFailed, err.Error()),
			"dir", testDir), "stderr", lastLine(stderr.Bytes()))
	}

	var found listing
	if err := decodeLast(stdout.Bytes(), &found); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrTestDiscoveryFailed, err.Error()), "dir", testDir)
	}
	if found.PatternError != "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTestPattern, found.PatternError), "pattern", pattern)
	}

	var matched []domain.TestCase
	for _, t := range found.Tests {
		c.logger.Debug(fmt.Sprintf("%s pattern:%s match:%t", t.ID, pattern, t.Match))
		if t.Match {
			matched = append(matched, domain.TestCase{ID: t.ID, Module: t.Module})
		}
	}
	return matched, nil
}

// Run executes cases with interpreter and returns the runner's summary. The
// verbose report goes to stderr. An empty suite runs nothing.
func (c *Collector) Run(
	ctx context.Context,
	interpreter, projectDir string,
	cases []domain.TestCase,
	stdout, stderr io.Writer,
) (domain.TestResult, error) {
	if len(cases) == 0 {
		return domain.TestResult{Ran: true}, nil
	}

	testDir := filepath.Join(projectDir, TestDir)
	argv := []string{interpreter, "-c", runnerScript, modeRun, testDir}
	for _, tc := range cases {
		argv = append(argv, tc.ID)
	}

	var captured bytes.Buffer
	out := io.MultiWriter(&captured, stdout)
	cmd := domain.NewCommand(projectDir, argv...)

	if err := c.executor.Execute(ctx, cmd, out, stderr); err != nil {
		return domain.TestResult{}, zerr.Wrap(err, domain.ErrTestRunFailed.Error())
	}

	result, err := parseSummary(captured.Bytes())
	if err != nil {
		return domain.TestResult{}, err
	}
	result.Ran = true
	return result, nil
}

// decodeLast unmarshals the last JSON object line of out into v.
func decodeLast(out []byte, v any) error {
	var last string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); strings.HasPrefix(line, "{") {
			last = line
		}
	}

	if last == "" {
		return zerr.New("runner printed no summary")
	}
	return json.Unmarshal([]byte(last), v)
}

// parseSummary reads the run summary the runner prints last.
func parseSummary(out []byte) (domain.TestResult, error) {
	var result domain.TestResult
	if err := decodeLast(out, &result); err != nil {
		return domain.TestResult{}, zerr.Wrap(domain.ErrTestRunFailed, err.Error())
	}
	return result, nil
}

func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	return lines[len(lines)-1]
}
