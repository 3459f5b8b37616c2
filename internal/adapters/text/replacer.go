// Package text provides the regex replace adapter.
package text

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/pakr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReplaceExecutor = (*Replacer)(nil)

// Replacer implements ports.ReplaceExecutor. It expands the command's glob,
// reads every matched regular file, applies the compiled pattern and writes
// the result back over the same path.
type Replacer struct {
	logger ports.Logger
}

// NewReplacer creates a new Replacer.
func NewReplacer(logger ports.Logger) *Replacer {
	return &Replacer{logger: logger}
}

// ExecuteReplace rewrites every file matched by cmd.Source. Matching zero
// paths is a configuration error. Non-file matches are skipped silently. The
// first read or write error aborts the command; files rewritten before the
// failure keep their new contents.
func (r *Replacer) ExecuteReplace(ctx context.Context, cmd domain.ReplaceCommand) error {
	re, err := regexp.Compile(cmd.Pattern)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidPattern, err.Error()), "regex", cmd.Pattern)
	}

	matches, err := doublestar.FilepathGlob(cmd.Source)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrGlobExpansion, err.Error()), "glob", cmd.Source)
	}
	if len(matches) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNoFilesMatched, "glob expansion yielded no paths"), "glob", cmd.Source)
	}

	rewritten := 0
	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := r.rewriteFile(path, re, cmd.Replacement)
		if err != nil {
			return err
		}
		if ok {
			rewritten++
		}
	}

	r.logger.Info(fmt.Sprintf("rewrote %d file(s) matching %s", rewritten, cmd.Source))
	return nil
}

// rewriteFile applies the pattern to a single glob match. Returns false
// without error for non-regular files.
func (r *Replacer) rewriteFile(path string, re *regexp.Regexp, replacement string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat matched path"), "path", path)
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from user glob
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}

	result := re.ReplaceAllString(string(data), replacement)

	if err := os.WriteFile(path, []byte(result), info.Mode().Perm()); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return true, nil
}
