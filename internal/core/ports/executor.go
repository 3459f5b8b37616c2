package ports

import (
	"context"

	"go.trai.ch/pakr/internal/core/domain"
)

// CopyExecutor executes copy commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CopyExecutor interface {
	// ExecuteCopy recursively copies regular files from the command's source
	// directory to its destination. Any traversal or I/O error aborts the
	// command; files copied before the failure are left in place.
	ExecuteCopy(ctx context.Context, cmd domain.CopyCommand) error
}

// ReplaceExecutor executes replace commands.
type ReplaceExecutor interface {
	// ExecuteReplace rewrites every regular file matched by the command's
	// glob, replacing all pattern matches. A zero-path expansion is an error.
	ExecuteReplace(ctx context.Context, cmd domain.ReplaceCommand) error
}

// ShellExecutor executes run commands.
type ShellExecutor interface {
	// ExecuteRun runs the command line synchronously, buffering its output
	// until the process exits. A non-zero exit status is an error carrying
	// the captured standard error.
	ExecuteRun(ctx context.Context, cmd domain.RunCommand) error
}
