package app

import (
	"context"

	"github.com/grindlemire/graft"
	"gutengrep/internal/adapters/cache"
	"gutengrep/internal/adapters/config"
	"gutengrep/internal/adapters/loader"
	"gutengrep/internal/adapters/logger"
	"gutengrep/internal/adapters/report"
	"gutengrep/internal/adapters/segmenter"
	"gutengrep/internal/core/domain"
	"gutengrep/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.NodeID,
			segmenter.NodeID,
			cache.NodeID,
			report.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

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
	ld, err := graft.Dep[ports.Loader](ctx)
	if err != nil {
		return nil, err
	}

	seg, err := graft.Dep[ports.Segmenter](ctx)
	if err != nil {
		return nil, err
	}

	cc, err := graft.Dep[ports.CorpusCache](ctx)
	if err != nil {
		return nil, err
	}

	rep, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	defaults, err := graft.Dep[domain.Defaults](ctx)
	if err != nil {
		return nil, err
	}

	return New(ld, seg, cc, rep, log, defaults), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
