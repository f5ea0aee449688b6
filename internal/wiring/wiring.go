// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vmb/internal/adapters/config"
	_ "go.trai.ch/vmb/internal/adapters/git"
	_ "go.trai.ch/vmb/internal/adapters/logger"
	_ "go.trai.ch/vmb/internal/adapters/prompt"
	_ "go.trai.ch/vmb/internal/adapters/shell"
	_ "go.trai.ch/vmb/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/vmb/internal/app"
	_ "go.trai.ch/vmb/internal/engine/collector"
	_ "go.trai.ch/vmb/internal/engine/resolver"
)
