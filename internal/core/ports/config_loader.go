// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/pakr/internal/core/domain"

// ConfigLoader defines the interface for loading the packaging configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration document at the given path and returns
	// the typed configuration with all ${name} references expanded.
	Load(path string) (*domain.Config, error)
}
