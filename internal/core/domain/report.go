package domain

import "time"

// CommandFailure records one failed command: its position in the declared
// sequence, its variant, and the underlying error.
type CommandFailure struct {
	Index int
	Kind  CommandKind
	Err   error
}

// RunReport is the aggregate result of executing a command list. Every
// command is attempted; failures are collected in declaration order.
// Successes are reported only by their absence from Failures.
type RunReport struct {
	Total     int
	Failures  []CommandFailure
	StartedAt time.Time
	Duration  time.Duration
}

// Failed returns the number of failed commands.
func (r *RunReport) Failed() int {
	return len(r.Failures)
}

// Succeeded returns the number of commands that completed without error.
func (r *RunReport) Succeeded() int {
	return r.Total - len(r.Failures)
}

// OK reports whether every command completed without error.
func (r *RunReport) OK() bool {
	return len(r.Failures) == 0
}
