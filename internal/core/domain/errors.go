package domain

import "go.trai.ch/zerr"

var (
	// ErrDecode is returned when the configuration document cannot be decoded.
	ErrDecode = zerr.New("invalid configuration document")

	// ErrInvalidCommandShape is returned when a command entry declares no
	// variant, an unknown variant, or fields belonging to another variant.
	ErrInvalidCommandShape = zerr.New("invalid command shape")

	// ErrDuplicateDefine is returned when the same definition key is declared twice.
	ErrDuplicateDefine = zerr.New("duplicate definition key")

	// ErrSourceNotFound is returned when a copy source is missing or not a directory.
	ErrSourceNotFound = zerr.New("copy source not found")

	// ErrInvalidPattern is returned when a replace regex does not compile.
	ErrInvalidPattern = zerr.New("invalid replacement pattern")

	// ErrGlobExpansion is returned when a replace glob cannot be expanded.
	ErrGlobExpansion = zerr.New("glob expansion failed")

	// ErrNoFilesMatched is returned when a replace glob matches no paths.
	// An empty match set is a configuration error, not a no-op.
	ErrNoFilesMatched = zerr.New("no files matched")

	// ErrCommandFailed is returned when a run command exits with a failure status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandsFailed is the aggregate error for a run with at least one
	// failing command. The CLI maps it to a non-zero exit code.
	ErrCommandsFailed = zerr.New("one or more commands failed")
)
