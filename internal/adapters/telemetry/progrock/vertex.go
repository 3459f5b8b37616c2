package progrock

import (
	"github.com/vito/progrock"
)

// Span wraps *progrock.VertexRecorder. The vertex is completed with the
// last recorded error when the span ends.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write forwards p to the vertex's stdout stream.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError stores err as the span's outcome.
func (s *Span) RecordError(err error) {
	s.err = err
}

// End marks the vertex as finished, successfully or with the recorded error.
func (s *Span) End() {
	s.vertex.Done(s.err)
}
