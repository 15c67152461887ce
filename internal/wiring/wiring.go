// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "gutengrep/internal/adapters/cache"
	_ "gutengrep/internal/adapters/config"
	_ "gutengrep/internal/adapters/loader"
	_ "gutengrep/internal/adapters/logger"
	_ "gutengrep/internal/adapters/report"
	_ "gutengrep/internal/adapters/segmenter"
	// Register app nodes.
	_ "gutengrep/internal/app"
)
