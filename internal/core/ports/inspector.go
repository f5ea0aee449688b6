package ports

import (
	"context"

	"go.trai.ch/vmb/internal/core/domain"
)

// ModuleInspector collects version control metadata for a repository and its submodules.
//
//go:generate mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type ModuleInspector interface {
	// Inspect returns metadata for the repository at root and every submodule below it,
	// keyed by module name.
	Inspect(ctx context.Context, root string) (domain.ModuleSet, error)
}
