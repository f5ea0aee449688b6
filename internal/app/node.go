package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vmb/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vmb/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/vmb/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vmb/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vmb/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/vmb/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/vmb/internal/core/ports"
	"go.trai.ch/vmb/internal/engine/collector"
	"go.trai.ch/vmb/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.PackageNodeID,
			shell.NodeID,
			prompt.NodeID,
			git.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			resolver.NodeID,
			collector.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	packages, err := graft.Dep[ports.PackageConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.ModuleInspector](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	coll, err := graft.Dep[*collector.Collector](ctx)
	if err != nil {
		return nil, err
	}

	return New(Dependencies{
		ConfigLoader: loader,
		Packages:     packages,
		Executor:     executor,
		Prompter:     prompter,
		Inspector:    inspector,
		Logger:       log,
		Tracer:       tracer,
		Resolver:     res,
		Collector:    coll,
	}), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
