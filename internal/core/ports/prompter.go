package ports

// Prompter asks the user a question and returns the line they typed.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Prompt writes question and blocks until a line of input is read. The returned
	// answer has its line terminator removed. End of input yields an empty answer.
	Prompt(question string) (string, error)
}
