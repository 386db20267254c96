// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/ontoforge/ontoforge/internal/adapters/config"
	_ "github.com/ontoforge/ontoforge/internal/adapters/fetch"
	_ "github.com/ontoforge/ontoforge/internal/adapters/logger"
	_ "github.com/ontoforge/ontoforge/internal/adapters/owl"
	_ "github.com/ontoforge/ontoforge/internal/adapters/project"
	_ "github.com/ontoforge/ontoforge/internal/adapters/table"
	// Register app nodes.
	_ "github.com/ontoforge/ontoforge/internal/app"
)
