package config

import (
	"context"

	"github.com/grindlemire/graft"
	"gutengrep/internal/core/domain"
)

// NodeID is the unique identifier for the run defaults Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[domain.Defaults]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Defaults, error) {
			return Load(".")
		},
	})
}
