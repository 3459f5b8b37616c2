// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pakr/internal/adapters/config"
	_ "go.trai.ch/pakr/internal/adapters/fs"
	_ "go.trai.ch/pakr/internal/adapters/logger"
	_ "go.trai.ch/pakr/internal/adapters/shell"
	_ "go.trai.ch/pakr/internal/adapters/state"
	_ "go.trai.ch/pakr/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/pakr/internal/adapters/text"
	// Register app and engine nodes.
	_ "go.trai.ch/pakr/internal/app"
	_ "go.trai.ch/pakr/internal/engine/runner"
)
