// Package expand implements ${name} substitution over configuration text.
package expand

import (
	"regexp"
	"strings"

	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/zerr"
)

// Table maps definition keys to their fully resolved values. After BuildTable
// returns, no value references a key that exists in the table.
type Table map[string]string

var refPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// BuildTable resolves the given definitions in declaration order. Each value
// is expanded against the table of definitions resolved so far, so later
// definitions may reference earlier ones. Forward references are left
// verbatim here; they can still resolve during whole-document expansion.
// A duplicated key is rejected.
func BuildTable(items []domain.DefineItem) (Table, error) {
	table := make(Table, len(items))
	for _, item := range items {
		if _, ok := table[item.Key]; ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateDefine, "definition declared twice"), "key", item.Key)
		}
		table[item.Key] = Expand(item.Value, table)
	}
	return table, nil
}

// Expand replaces every ${name} reference in text with the table's value for
// name, recursively expanding values that themselves contain references.
// A reference to a key absent from the table stops expansion: the remaining
// text is returned verbatim, unresolved reference included. Replacements
// already made stand. The caller decides whether leftovers are fatal.
//
// A definition that references itself, directly or through other keys, is
// treated as unresolved at the point of the cycle rather than recursed into.
func Expand(text string, table Table) string {
	r := &resolver{table: table, active: make(map[string]bool)}
	out, _ := r.expand(text)
	return out
}

type resolver struct {
	table  Table
	active map[string]bool
}

// expand walks text left to right. The boolean result reports whether the
// whole text was processed, or expansion stopped at an unresolvable reference.
func (r *resolver) expand(text string) (string, bool) {
	var b strings.Builder
	rest := text
	for {
		loc := refPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			return b.String(), true
		}

		name := rest[loc[2]:loc[3]]
		value, ok := r.lookup(name)
		if !ok {
			b.WriteString(rest)
			return b.String(), false
		}

		b.WriteString(rest[:loc[0]])
		b.WriteString(value)
		rest = rest[loc[1]:]
	}
}

// lookup resolves the table value for name. A key already being resolved on
// the current call stack is reported as absent, which bounds the recursion
// and leaves the reference literal in the output.
func (r *resolver) lookup(name string) (string, bool) {
	if r.active[name] {
		return "", false
	}
	value, ok := r.table[name]
	if !ok {
		return "", false
	}

	r.active[name] = true
	resolved, _ := r.expand(value)
	delete(r.active, name)
	return resolved, true
}
