package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vmb/internal/adapters/logger"
	"go.trai.ch/vmb/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the project config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// PackageNodeID is the unique identifier for the package config loader Graft node.
	PackageNodeID graft.ID = "adapter.package_config_loader"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.PackageConfigLoader]{
		ID:        PackageNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageConfigLoader, error) {
			return NewPackageLoader(), nil
		},
	})
}
