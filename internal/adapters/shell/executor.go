// Package shell provides the shell command executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/pakr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ShellExecutor = (*Executor)(nil)

// Executor implements ports.ShellExecutor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// ExecuteRun runs the command line and waits for it to exit. The line is
// split with shell quoting rules and the first token executed directly; when
// the direct launch fails (shell builtins, pipelines, anything needing shell
// interpretation) the original line is handed to the platform shell instead.
// Output is buffered until exit. Success is the process exit status alone;
// on failure the captured standard error travels with the returned error.
func (e *Executor) ExecuteRun(ctx context.Context, cmd domain.RunCommand) error {
	words, err := shellwords.Parse(cmd.Command)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to split command line"), "command", cmd.Command)
	}
	if len(words) == 0 {
		return zerr.Wrap(domain.ErrInvalidCommandShape, "empty command line")
	}

	var stdout, stderr bytes.Buffer
	runErr := e.runDirect(ctx, words, &stdout, &stderr)
	if isLaunchFailure(runErr) {
		stdout.Reset()
		stderr.Reset()
		runErr = e.runViaShell(ctx, cmd.Command, &stdout, &stderr)
	}

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err := zerr.Wrap(domain.ErrCommandFailed, runErr.Error())
		err = zerr.With(err, "command", cmd.Command)
		err = zerr.With(err, "exit_code", exitCode)
		return zerr.With(err, "stderr", strings.TrimSpace(stderr.String()))
	}

	// Captured stdout is surfaced for observability only.
	if out := strings.TrimSpace(stdout.String()); out != "" {
		e.logger.Info(fmt.Sprintf("command output: %s", out))
	}
	return nil
}

func (e *Executor) runDirect(ctx context.Context, words []string, stdout, stderr *bytes.Buffer) error {
	c := exec.CommandContext(ctx, words[0], words[1:]...) //nolint:gosec // user provided command
	c.Stdout = stdout
	c.Stderr = stderr
	return c.Run()
}

func (e *Executor) runViaShell(ctx context.Context, line string, stdout, stderr *bytes.Buffer) error {
	name, flag := "sh", "-c"
	if runtime.GOOS == "windows" {
		name, flag = "cmd", "/C"
	}

	c := exec.CommandContext(ctx, name, flag, line) //nolint:gosec // user provided command
	c.Stdout = stdout
	c.Stderr = stderr
	return c.Run()
}

// isLaunchFailure reports whether the process could not even be started, as
// opposed to starting and exiting with a failure status.
func isLaunchFailure(err error) bool {
	if err == nil {
		return false
	}
	var execErr *exec.Error
	return errors.As(err, &execErr)
}
