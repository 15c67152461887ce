package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"gutengrep/internal/core/ports"
)

// NodeID is the unique identifier for the corpus cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.CorpusCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CorpusCache, error) {
			return New(), nil
		},
	})
}
