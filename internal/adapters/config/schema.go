package config

import (
	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/zerr"
)

// document represents the top-level shape of a pakr.yaml file.
type document struct {
	DefineItems []defineItemDTO `yaml:"define_items"`
	Commands    []commandDTO    `yaml:"command"`
}

// defineItemDTO represents a single definition entry.
type defineItemDTO struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// commandDTO carries the superset of all variant fields plus the type
// discriminant. Pointer fields distinguish "absent" from "zero", so a decoded
// entry can be validated against exactly one variant.
type commandDTO struct {
	Type string `yaml:"type"`

	// copy and replace share "source".
	Source *string `yaml:"source"`

	// copy
	Destination   *string `yaml:"destination"`
	GitignorePath *string `yaml:"gitignore_path"`
	UseGitignore  *bool   `yaml:"use_gitignore"`

	// replace
	Regex       *string `yaml:"regex"`
	Replacement *string `yaml:"replacement"`

	// run
	Command *string `yaml:"command"`
}

// toDomain validates the entry against its declared variant and builds the
// tagged union. Required fields must be present; fields belonging to another
// variant must be absent.
func (c *commandDTO) toDomain() (domain.Command, error) {
	switch domain.CommandKind(c.Type) {
	case domain.KindCopy:
		return c.toCopy()
	case domain.KindReplace:
		return c.toReplace()
	case domain.KindRun:
		return c.toRun()
	case "":
		return domain.Command{}, zerr.Wrap(domain.ErrInvalidCommandShape, "command entry has no type")
	default:
		return domain.Command{}, zerr.With(zerr.Wrap(domain.ErrInvalidCommandShape, "unknown command type"), "type", c.Type)
	}
}

func (c *commandDTO) toCopy() (domain.Command, error) {
	if c.Source == nil || c.Destination == nil {
		return domain.Command{}, zerr.Wrap(domain.ErrInvalidCommandShape, "copy requires source and destination")
	}
	if c.Regex != nil || c.Replacement != nil || c.Command != nil {
		return domain.Command{}, zerr.Wrap(domain.ErrInvalidCommandShape, "copy carries fields of another variant")
	}

	cmd := domain.CopyCommand{
		Source:      *c.Source,
		Destination: *c.Destination,
	}
	if c.GitignorePath != nil {
		cmd.IgnoreFile = *c.GitignorePath
	}
	if c.UseGitignore != nil {
		cmd.UseIgnoreRules = *c.UseGitignore
	}
	return domain.Command{Kind: domain.KindCopy, Copy: &cmd}, nil
}

func (c *commandDTO) toReplace() (domain.Command, error) {
	if c.Source == nil || c.Regex == nil || c.Replacement == nil {
		return domain.Command{}, zerr.Wrap(domain.ErrInvalidCommandShape, "replace requires source, regex and replacement")
	}
	if c.Destination != nil || c.GitignorePath != nil || c.UseGitignore != nil || c.Command != nil {
		return domain.Command{}, zerr.Wrap(domain.ErrInvalidCommandShape, "replace carries fields of another variant")
	}

	return domain.Command{Kind: domain.KindReplace, Replace: &domain.ReplaceCommand{
		Source:      *c.Source,
		Pattern:     *c.Regex,
		Replacement: *c.Replacement,
	}}, nil
}

func (c *commandDTO) toRun() (domain.Command, error) {
	if c.Command == nil || *c.Command == "" {
		return domain.Command{}, zerr.Wrap(domain.ErrInvalidCommandShape, "run requires a non-empty command")
	}
	if c.Source != nil || c.Destination != nil || c.GitignorePath != nil || c.UseGitignore != nil || c.Regex != nil || c.Replacement != nil {
		return domain.Command{}, zerr.Wrap(domain.ErrInvalidCommandShape, "run carries fields of another variant")
	}

	return domain.Command{Kind: domain.KindRun, Run: &domain.RunCommand{Command: *c.Command}}, nil
}
