package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/pakr/internal/adapters/telemetry/progrock"
	"go.trai.ch/zerr"
)

func TestRecorder_SpanLifecycle(t *testing.T) {
	r := progrock.New()
	defer func() { require.NoError(t, r.Close()) }()

	_, span := r.Start(context.Background(), "01 copy")
	_, err := span.Write([]byte("copied 3 file(s)\n"))
	require.NoError(t, err)
	span.End()

	_, failed := r.Start(context.Background(), "02 run")
	failed.RecordError(zerr.New("exit status 1"))
	failed.End()
}
