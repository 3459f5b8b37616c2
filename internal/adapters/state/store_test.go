package state_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pakr/internal/adapters/state"
	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestStore_PutAndLast(t *testing.T) {
	s := state.NewStore(filepath.Join(t.TempDir(), "nested", "last-run.json"))

	in := &domain.RunReport{
		Total:     3,
		StartedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Failures: []domain.CommandFailure{
			{Index: 1, Kind: domain.KindRun, Err: zerr.New("exit status 2")},
		},
	}
	require.NoError(t, s.Put(in))

	out, err := s.Last()
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.Failed())
	assert.Equal(t, 2, out.Succeeded())
	assert.Equal(t, in.StartedAt, out.StartedAt)
	assert.Equal(t, in.Duration, out.Duration)
	require.Len(t, out.Failures, 1)
	assert.Equal(t, 1, out.Failures[0].Index)
	assert.Equal(t, domain.KindRun, out.Failures[0].Kind)
	assert.Equal(t, "exit status 2", out.Failures[0].Err.Error())
}

func TestStore_LastWithoutRun(t *testing.T) {
	s := state.NewStore(filepath.Join(t.TempDir(), "last-run.json"))

	out, err := s.Last()
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestStore_PutOverwrites(t *testing.T) {
	s := state.NewStore(filepath.Join(t.TempDir(), "last-run.json"))

	require.NoError(t, s.Put(&domain.RunReport{Total: 1}))
	require.NoError(t, s.Put(&domain.RunReport{Total: 7}))

	out, err := s.Last()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 7, out.Total)
}
