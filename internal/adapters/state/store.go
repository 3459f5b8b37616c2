// Package state persists the report of the most recent run as a flat JSON file.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/pakr/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is the report file written next to the working directory's
// configuration.
const DefaultPath = ".pakr/last-run.json"

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore using a JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a ReportStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// record is the on-disk shape of a run report.
type record struct {
	Total      int             `json:"total"`
	Failed     int             `json:"failed"`
	StartedAt  time.Time       `json:"started_at"`
	DurationMS int64           `json:"duration_ms"`
	Failures   []failureRecord `json:"failures,omitempty"`
}

type failureRecord struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// Put stores the report, replacing any previous one.
func (s *Store) Put(report *domain.RunReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := record{
		Total:      report.Total,
		Failed:     report.Failed(),
		StartedAt:  report.StartedAt,
		DurationMS: report.Duration.Milliseconds(),
	}
	for _, f := range report.Failures {
		rec.Failures = append(rec.Failures, failureRecord{
			Index: f.Index,
			Kind:  string(f.Kind),
			Error: f.Err.Error(),
		})
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run report")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create report directory")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write run report")
	}
	return nil
}

// Last retrieves the most recent run report, or nil if none was recorded.
func (s *Store) Last() (*domain.RunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read run report")
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal run report")
	}

	report := &domain.RunReport{
		Total:     rec.Total,
		StartedAt: rec.StartedAt,
		Duration:  time.Duration(rec.DurationMS) * time.Millisecond,
	}
	for _, f := range rec.Failures {
		report.Failures = append(report.Failures, domain.CommandFailure{
			Index: f.Index,
			Kind:  domain.CommandKind(f.Kind),
			Err:   zerr.New(f.Error),
		})
	}
	return report, nil
}
