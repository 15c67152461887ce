package segmenter

import (
	"context"

	"github.com/grindlemire/graft"
	"gutengrep/internal/adapters/logger"
	"gutengrep/internal/core/ports"
)

// NodeID is the unique identifier for the segmenter Graft node.
const NodeID graft.ID = "adapter.segmenter"

func init() {
	graft.Register(graft.Node[ports.Segmenter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Segmenter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
