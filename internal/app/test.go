package app

import (
	"context"
	"fmt"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/vmb/internal/engine/collector"
	"go.trai.ch/vmb/internal/engine/session"
	"go.trai.ch/zerr"
)

// test runs ctest for UI-framework builds and the Python unit tests otherwise.
func (a *App) test(ctx context.Context, sess *session.Session, inv *domain.Invocation, pattern string) error {
	if inv.UIFramework {
		if pattern == "" {
			pattern = collector.MatchAll
		}
		return sess.Execute(ctx, domain.NewCommand(inv.BuildDir,
			"ctest", "--verbose", "--verbose",
			"--build-config", inv.BuildType.String(),
			"--tests-regex", pattern,
		))
	}

	cases, err := a.collector.Collect(ctx, inv.Interpreter, inv.ProjectDir, pattern)
	if err != nil {
		return err
	}

	var result domain.TestResult
	message := fmt.Sprintf("run %d tests matching %s", len(cases), collector.NormalizePattern(pattern))
	ran, err := sess.Call(ctx, message, func(ctx context.Context) error {
		var runErr error
		result, runErr = a.collector.Run(ctx, inv.Interpreter, inv.ProjectDir, cases, a.stdout, a.stderr)
		return runErr
	})
	if err != nil || !ran {
		return err
	}

	a.logger.Info(fmt.Sprintf("ran %d tests: %d failures, %d errors, %d skipped",
		result.TestsRun, result.Failures, result.Errors, result.Skipped))

	if !result.WasSuccessful() {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrTestsFailed, "unit tests reported problems"),
			"failures", result.Failures), "errors", result.Errors)
	}
	return nil
}
