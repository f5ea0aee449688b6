package domain

// TestCase is a single discovered test, identified the way the test runner names it:
// <module>.<Class>.<method>.
type TestCase struct {
	ID     string
	Module string
}

// TestResult summarizes a test run.
type TestResult struct {
	// Ran is false when the run was skipped by the run mode.
	Ran      bool `json:"-"`
	TestsRun int  `json:"tests_run"`
	Failures int  `json:"failures"`
	Errors   int  `json:"errors"`
	Skipped  int  `json:"skipped"`
}

// WasSuccessful reports whether the run produced no failures and no errors.
func (r TestResult) WasSuccessful() bool {
	return r.Failures == 0 && r.Errors == 0
}
