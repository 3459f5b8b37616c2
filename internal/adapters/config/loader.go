// Package config provides the configuration loader for pakr.
package config

import (
	"fmt"
	"os"

	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/pakr/internal/core/ports"
	"go.trai.ch/pakr/internal/engine/expand"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	// ExpandDefines controls whether ${name} references are substituted.
	// Disabled, the document is decoded as-is; used for loading documents
	// that are already fully resolved.
	ExpandDefines bool

	logger ports.Logger
}

// NewLoader creates a Loader with substitution enabled.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{ExpandDefines: true, logger: logger}
}

// Load reads the configuration document at the given path.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg, err := Load(path, l.ExpandDefines)
	if err != nil {
		return nil, err
	}
	if l.logger != nil {
		l.logger.Info(fmt.Sprintf("loaded %s: %d definition(s), %d command(s)", path, len(cfg.Defines), len(cfg.Commands)))
	}
	return cfg, nil
}

// Load reads and decodes the configuration file at path.
//
// With expandDefines set, the document text is decoded once to extract the
// definition list, a name table is built by resolving each definition against
// the table of earlier ones, and the substitution is then applied to the
// entire raw text before the final decode. Substituting the whole text lets
// variables appear anywhere, including inside paths, regexes and command
// lines. A definition value may reference only keys declared before it.
func Load(path string, expandDefines bool) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}
	text := string(data)

	if expandDefines {
		defines, err := decodeDefines(text)
		if err != nil {
			return nil, err
		}
		table, err := expand.BuildTable(defines)
		if err != nil {
			return nil, err
		}
		text = expand.Expand(text, table)
	}

	return decode(text)
}

// decodeDefines runs the first, substitution-free decode pass and extracts
// only the definition list. Command entries are not validated on this pass:
// they may still contain unexpanded references.
func decodeDefines(text string) ([]domain.DefineItem, error) {
	var doc struct {
		DefineItems []defineItemDTO `yaml:"define_items"`
	}
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, zerr.Wrap(domain.ErrDecode, err.Error())
	}

	defines := make([]domain.DefineItem, len(doc.DefineItems))
	for i, d := range doc.DefineItems {
		defines[i] = domain.DefineItem{Key: d.Key, Value: d.Value}
	}
	return defines, nil
}

// decode parses the (possibly substituted) document text into the typed
// configuration, validating every command entry against exactly one variant.
func decode(text string) (*domain.Config, error) {
	var doc document
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, zerr.Wrap(domain.ErrDecode, err.Error())
	}

	cfg := &domain.Config{
		Defines:  make([]domain.DefineItem, len(doc.DefineItems)),
		Commands: make([]domain.Command, len(doc.Commands)),
	}
	for i, d := range doc.DefineItems {
		cfg.Defines[i] = domain.DefineItem{Key: d.Key, Value: d.Value}
	}
	for i, c := range doc.Commands {
		cmd, err := c.toDomain()
		if err != nil {
			return nil, zerr.With(err, "command_index", i)
		}
		cfg.Commands[i] = cmd
	}
	return cfg, nil
}
