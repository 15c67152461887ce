package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"gutengrep/internal/adapters/config"
	"gutengrep/internal/core/domain"
	"gutengrep/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			defaults, err := graft.Dep[domain.Defaults](ctx)
			if err != nil {
				return nil, err
			}

			lg := New()
			lg.SetJSON(defaults.JSON)
			return lg, nil
		},
	})
}
