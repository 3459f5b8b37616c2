// Package runner implements the sequential command execution coordinator.
package runner

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/pakr/internal/core/ports"
	"go.trai.ch/zerr"
)

// CommandStatus represents the status of a command.
type CommandStatus string

const (
	// StatusPending indicates the command has not started yet.
	StatusPending CommandStatus = "Pending"
	// StatusRunning indicates the command is currently executing.
	StatusRunning CommandStatus = "Running"
	// StatusCompleted indicates the command finished successfully.
	StatusCompleted CommandStatus = "Completed"
	// StatusFailed indicates the command execution failed.
	StatusFailed CommandStatus = "Failed"
)

// Runner executes a command list strictly in declared order, one command
// fully completing before the next starts. A failing command does not stop
// the run: its error is recorded and execution continues. The result carries
// the full ordered failure list together with the total attempted count.
type Runner struct {
	copier   ports.CopyExecutor
	replacer ports.ReplaceExecutor
	shell    ports.ShellExecutor
	logger   ports.Logger
	tracer   ports.Tracer

	status []CommandStatus
}

// NewRunner creates a new Runner with the given executors.
func NewRunner(
	copier ports.CopyExecutor,
	replacer ports.ReplaceExecutor,
	shell ports.ShellExecutor,
	logger ports.Logger,
	tracer ports.Tracer,
) *Runner {
	return &Runner{
		copier:   copier,
		replacer: replacer,
		shell:    shell,
		logger:   logger,
		tracer:   tracer,
	}
}

// RunAll executes every command and returns the aggregate report. All
// commands are attempted regardless of earlier failures.
func (r *Runner) RunAll(ctx context.Context, commands []domain.Command) *domain.RunReport {
	report := &domain.RunReport{
		Total:     len(commands),
		StartedAt: time.Now(),
	}

	r.status = make([]CommandStatus, len(commands))
	for i := range r.status {
		r.status[i] = StatusPending
	}

	for i, cmd := range commands {
		r.status[i] = StatusRunning
		name := fmt.Sprintf("%d %s", i+1, cmd.Kind)
		spanCtx, span := r.tracer.Start(ctx, name)

		err := r.dispatch(spanCtx, cmd)
		if err != nil {
			r.status[i] = StatusFailed
			span.RecordError(err)
			r.logger.Error(zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "index", i), "kind", string(cmd.Kind)))
			report.Failures = append(report.Failures, domain.CommandFailure{Index: i, Kind: cmd.Kind, Err: err})
		} else {
			r.status[i] = StatusCompleted
			_, _ = fmt.Fprintf(span, "%s completed\n", cmd.Kind)
		}
		span.End()
	}

	report.Duration = time.Since(report.StartedAt)
	return report
}

// Status returns the status of the command at the given index of the last
// RunAll call.
func (r *Runner) Status(index int) CommandStatus {
	if index < 0 || index >= len(r.status) {
		return StatusPending
	}
	return r.status[index]
}

// dispatch routes a command to the executor for its variant.
func (r *Runner) dispatch(ctx context.Context, cmd domain.Command) error {
	switch cmd.Kind {
	case domain.KindCopy:
		return r.copier.ExecuteCopy(ctx, *cmd.Copy)
	case domain.KindReplace:
		return r.replacer.ExecuteReplace(ctx, *cmd.Replace)
	case domain.KindRun:
		return r.shell.ExecuteRun(ctx, *cmd.Run)
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidCommandShape, "unknown command kind"), "kind", string(cmd.Kind))
	}
}
