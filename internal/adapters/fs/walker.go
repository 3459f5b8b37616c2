package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"go.trai.ch/zerr"
)

// ignoreScope is a compiled ignore file together with the directory it was
// loaded from. Patterns apply to paths relative to that directory.
type ignoreScope struct {
	dir     string
	matcher *ignore.GitIgnore
}

type walkOptions struct {
	// useRules enables ignore filtering. Disabled, every file is visited,
	// including anything under version-control directories.
	useRules bool
	// ignoreFile is an additional ignore-file name honored at every
	// directory level next to .gitignore.
	ignoreFile string
}

// walkFiles visits every regular file under root in depth-first order,
// calling fn with the file's path and its path relative to root. With ignore
// rules enabled, a stack of per-directory ignore scopes is maintained so that
// deeper rules override shallower ones and !-patterns re-include.
func walkFiles(root string, opts walkOptions, fn func(path, rel string) error) error {
	var scopes []ignoreScope

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == root {
			if opts.useRules {
				scopes, err = pushScopes(scopes, path, opts.ignoreFile)
			}
			return err
		}

		if opts.useRules {
			scopes = pruneScopes(scopes, path)

			if d.IsDir() && d.Name() == ".git" {
				return filepath.SkipDir
			}
			if ignoredBy(scopes, path, d.IsDir()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if scopes, err = pushScopes(scopes, path, opts.ignoreFile); err != nil {
					return err
				}
			}
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return fn(path, rel)
	})
}

// pushScopes compiles the ignore files present in dir and appends them to the
// stack. The custom ignore file is compiled after .gitignore so its rules win.
func pushScopes(scopes []ignoreScope, dir, customName string) ([]ignoreScope, error) {
	names := []string{".gitignore"}
	if customName != "" && customName != ".gitignore" {
		names = append(names, customName)
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat ignore file"), "path", path)
		}
		if info.IsDir() {
			continue
		}

		matcher, err := ignore.CompileIgnoreFile(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read ignore file"), "path", path)
		}
		scopes = append(scopes, ignoreScope{dir: dir, matcher: matcher})
	}
	return scopes, nil
}

// pruneScopes drops scopes whose directory is not an ancestor of path.
func pruneScopes(scopes []ignoreScope, path string) []ignoreScope {
	for len(scopes) > 0 {
		last := scopes[len(scopes)-1]
		if strings.HasPrefix(path, last.dir+string(os.PathSeparator)) {
			break
		}
		scopes = scopes[:len(scopes)-1]
	}
	return scopes
}

// ignoredBy evaluates the scope stack from shallowest to deepest; the last
// scope with a matching pattern decides, so a deeper !-pattern re-includes.
func ignoredBy(scopes []ignoreScope, path string, isDir bool) bool {
	ignored := false
	for _, scope := range scopes {
		rel, err := filepath.Rel(scope.dir, path)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if isDir {
			rel += "/"
		}
		if match, pattern := scope.matcher.MatchesPathHow(rel); pattern != nil {
			ignored = match
		}
	}
	return ignored
}
