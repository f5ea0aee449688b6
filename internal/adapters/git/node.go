package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vmb/internal/adapters/shell"
	"go.trai.ch/vmb/internal/core/ports"
)

// NodeID is the unique identifier for the module inspector Graft node.
const NodeID graft.ID = "adapter.inspector"

func init() {
	graft.Register(graft.Node[ports.ModuleInspector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ModuleInspector, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewInspector(executor), nil
		},
	})
}
