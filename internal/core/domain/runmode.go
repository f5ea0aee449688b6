package domain

// RunMode governs whether external actions execute.
type RunMode int

const (
	// RunAlways executes every action. It is the default.
	RunAlways RunMode = iota
	// RunConfirm asks for interactive confirmation before each action.
	RunConfirm
	// RunNever only logs actions.
	RunNever
)

// String returns the flag spelling of the run mode.
func (m RunMode) String() string {
	switch m {
	case RunConfirm:
		return "run-confirm"
	case RunNever:
		return "run-never"
	default:
		return "run-always"
	}
}

// SelectRunMode converts the mutually exclusive run mode flags into a RunMode.
// No flag set selects RunAlways.
func SelectRunMode(never, confirm, always bool) (RunMode, error) {
	selected := 0
	for _, set := range []bool{never, confirm, always} {
		if set {
			selected++
		}
	}
	if selected > 1 {
		return RunAlways, ErrInvalidRunMode
	}

	switch {
	case never:
		return RunNever, nil
	case confirm:
		return RunConfirm, nil
	default:
		return RunAlways, nil
	}
}
