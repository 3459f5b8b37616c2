package ports

import "go.trai.ch/pakr/internal/core/domain"

// ReportStore defines the interface for persisting run reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Put stores the report of the most recent run.
	Put(report *domain.RunReport) error

	// Last retrieves the most recent run report.
	// Returns nil, nil if no run has been recorded yet.
	Last() (*domain.RunReport, error)
}
