// Package domain holds the core types of the packaging runner.
package domain

// DefineItem is a single name/value definition from the configuration.
// Values may reference earlier definitions with ${name} syntax.
type DefineItem struct {
	Key   string
	Value string
}

// CommandKind discriminates the command variants.
type CommandKind string

const (
	// KindCopy copies a directory tree, optionally honoring ignore rules.
	KindCopy CommandKind = "copy"
	// KindReplace rewrites files matched by a glob using a regular expression.
	KindReplace CommandKind = "replace"
	// KindRun executes a shell command line.
	KindRun CommandKind = "run"
)

// Command is a tagged union of the three command variants. Exactly one of
// the variant pointers is set, matching Kind. Instances are produced by the
// configuration loader, which enforces that invariant at decode time.
type Command struct {
	Kind    CommandKind
	Copy    *CopyCommand
	Replace *ReplaceCommand
	Run     *RunCommand
}

// CopyCommand copies every regular file under Source to the same relative
// path under Destination.
type CopyCommand struct {
	Source      string
	Destination string
	// IgnoreFile is the name of a custom ignore file honored at every
	// directory level, in addition to .gitignore, when UseIgnoreRules is set.
	IgnoreFile     string
	UseIgnoreRules bool
}

// ReplaceCommand rewrites all files matched by the Source glob, replacing
// every non-overlapping match of Pattern with Replacement. Replacement may
// reference capture groups ($1, ${name}).
type ReplaceCommand struct {
	Source      string
	Pattern     string
	Replacement string
}

// RunCommand executes a full shell command line.
type RunCommand struct {
	Command string
}

// Config is the loaded, immutable configuration: an ordered list of
// definitions and the commands to execute, in declared order.
type Config struct {
	Defines  []DefineItem
	Commands []Command
}
