package app

import (
	"github.com/ontoforge/ontoforge/internal/adapters/logger"
)

// Components bundles the top-level objects the CLI entry point needs after
// dependency injection.
type Components struct {
	App    *App
	Logger *logger.Logger
}
