package report

import (
	"context"

	"github.com/grindlemire/graft"
	"gutengrep/internal/adapters/config"
	"gutengrep/internal/core/domain"
	"gutengrep/internal/core/ports"
)

// NodeID is the unique identifier for the reporter Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Reporter, error) {
			defaults, err := graft.Dep[domain.Defaults](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(defaults.Width, defaults.Indent), nil
		},
	})
}
