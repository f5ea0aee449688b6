// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/vmb/internal/core/domain"
)

// Executor defines the interface for executing external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd in cmd.Dir and waits for it to exit. The command's output is
	// written to stdout and stderr.
	//
	// It returns an error carrying the exit code if the command fails.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
