package runner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pakr/internal/adapters/telemetry"
	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/pakr/internal/engine/runner"
	"go.trai.ch/zerr"
)

type mockExecutors struct {
	mock.Mock
	calls []string
}

func (m *mockExecutors) ExecuteCopy(ctx context.Context, cmd domain.CopyCommand) error {
	m.calls = append(m.calls, "copy:"+cmd.Source)
	return m.Called(ctx, cmd).Error(0)
}

func (m *mockExecutors) ExecuteReplace(ctx context.Context, cmd domain.ReplaceCommand) error {
	m.calls = append(m.calls, "replace:"+cmd.Source)
	return m.Called(ctx, cmd).Error(0)
}

func (m *mockExecutors) ExecuteRun(ctx context.Context, cmd domain.RunCommand) error {
	m.calls = append(m.calls, "run:"+cmd.Command)
	return m.Called(ctx, cmd).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newRunner(m *mockExecutors) *runner.Runner {
	return runner.NewRunner(m, m, m, nopLogger{}, telemetry.NewNoOpTracer())
}

func copyCmd(src string) domain.Command {
	return domain.Command{Kind: domain.KindCopy, Copy: &domain.CopyCommand{Source: src, Destination: "out"}}
}

func replaceCmd(src string) domain.Command {
	return domain.Command{Kind: domain.KindReplace, Replace: &domain.ReplaceCommand{Source: src, Pattern: "a", Replacement: "b"}}
}

func runCmd(line string) domain.Command {
	return domain.Command{Kind: domain.KindRun, Run: &domain.RunCommand{Command: line}}
}

func TestRunAll_AllSucceed(t *testing.T) {
	m := &mockExecutors{}
	m.On("ExecuteCopy", mock.Anything, mock.Anything).Return(nil)
	m.On("ExecuteRun", mock.Anything, mock.Anything).Return(nil)

	report := newRunner(m).RunAll(context.Background(), []domain.Command{
		copyCmd("src"),
		runCmd("echo hi"),
	})

	assert.True(t, report.OK())
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Succeeded())
	m.AssertExpectations(t)
}

func TestRunAll_FailuresDoNotStopTheRun(t *testing.T) {
	m := &mockExecutors{}
	failCopy := zerr.New("copy blew up")
	failRun := zerr.New("run blew up")
	m.On("ExecuteCopy", mock.Anything, mock.Anything).Return(failCopy)
	m.On("ExecuteReplace", mock.Anything, mock.Anything).Return(nil)
	m.On("ExecuteRun", mock.Anything, mock.Anything).Return(failRun)

	report := newRunner(m).RunAll(context.Background(), []domain.Command{
		copyCmd("src"),
		replaceCmd("*.txt"),
		runCmd("false"),
		replaceCmd("*.md"),
	})

	// Every command was attempted, in declared order.
	assert.Equal(t, []string{"copy:src", "replace:*.txt", "run:false", "replace:*.md"}, m.calls)

	// Exactly the failing commands appear, in their relative order.
	assert.Equal(t, 4, report.Total)
	require.Equal(t, 2, report.Failed())
	assert.Equal(t, 0, report.Failures[0].Index)
	assert.Equal(t, domain.KindCopy, report.Failures[0].Kind)
	assert.True(t, errors.Is(report.Failures[0].Err, failCopy))
	assert.Equal(t, 2, report.Failures[1].Index)
	assert.Equal(t, domain.KindRun, report.Failures[1].Kind)
	assert.True(t, errors.Is(report.Failures[1].Err, failRun))
}

func TestRunAll_StatusTracking(t *testing.T) {
	m := &mockExecutors{}
	m.On("ExecuteCopy", mock.Anything, mock.Anything).Return(zerr.New("nope"))
	m.On("ExecuteRun", mock.Anything, mock.Anything).Return(nil)

	r := newRunner(m)
	r.RunAll(context.Background(), []domain.Command{
		copyCmd("src"),
		runCmd("echo hi"),
	})

	assert.Equal(t, runner.StatusFailed, r.Status(0))
	assert.Equal(t, runner.StatusCompleted, r.Status(1))
	assert.Equal(t, runner.StatusPending, r.Status(99))
}

func TestRunAll_UnknownKindFails(t *testing.T) {
	m := &mockExecutors{}

	report := newRunner(m).RunAll(context.Background(), []domain.Command{
		{Kind: domain.CommandKind("archive")},
	})

	require.Equal(t, 1, report.Failed())
	assert.True(t, errors.Is(report.Failures[0].Err, domain.ErrInvalidCommandShape))
}

func TestRunAll_EmptyCommandList(t *testing.T) {
	report := newRunner(&mockExecutors{}).RunAll(context.Background(), nil)

	assert.True(t, report.OK())
	assert.Equal(t, 0, report.Total)
}
