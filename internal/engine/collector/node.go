package collector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vmb/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vmb/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vmb/internal/core/ports"
)

// NodeID is the unique identifier for the collector Graft node.
const NodeID graft.ID = "engine.collector"

func init() {
	graft.Register(graft.Node[*Collector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Collector, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(executor, log), nil
		},
	})
}
