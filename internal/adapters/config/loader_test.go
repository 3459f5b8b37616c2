package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pakr/internal/adapters/config"
	"go.trai.ch/pakr/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pakr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
define_items:
  - key: name
    value: myapp
  - key: out
    value: dist/${name}
command:
  - type: copy
    source: src
    destination: ${out}
    gitignore_path: .pakrignore
    use_gitignore: true
  - type: replace
    source: ${out}/**/*.txt
    regex: v(\d+)
    replacement: version-$1
  - type: run
    command: echo ${name}
`
	cfg, err := config.Load(writeConfig(t, content), true)
	require.NoError(t, err)

	require.Len(t, cfg.Commands, 3)

	cp := cfg.Commands[0]
	require.Equal(t, domain.KindCopy, cp.Kind)
	require.NotNil(t, cp.Copy)
	assert.Equal(t, "src", cp.Copy.Source)
	assert.Equal(t, "dist/myapp", cp.Copy.Destination)
	assert.Equal(t, ".pakrignore", cp.Copy.IgnoreFile)
	assert.True(t, cp.Copy.UseIgnoreRules)

	rp := cfg.Commands[1]
	require.Equal(t, domain.KindReplace, rp.Kind)
	require.NotNil(t, rp.Replace)
	assert.Equal(t, "dist/myapp/**/*.txt", rp.Replace.Source)
	assert.Equal(t, `v(\d+)`, rp.Replace.Pattern)
	assert.Equal(t, "version-$1", rp.Replace.Replacement)

	rn := cfg.Commands[2]
	require.Equal(t, domain.KindRun, rn.Kind)
	require.NotNil(t, rn.Run)
	assert.Equal(t, "echo myapp", rn.Run.Command)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), true)

	require.Error(t, err)
}

func TestLoad_MalformedDocument(t *testing.T) {
	_, err := config.Load(writeConfig(t, "command: [nonsense"), true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDecode))
}

func TestLoad_DuplicateDefine(t *testing.T) {
	content := `
define_items:
  - key: a
    value: "1"
  - key: a
    value: "2"
command: []
`
	_, err := config.Load(writeConfig(t, content), true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateDefine))
}

func TestLoad_CommandWithoutType(t *testing.T) {
	content := `
command:
  - source: a
    destination: b
`
	_, err := config.Load(writeConfig(t, content), true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCommandShape))
}

func TestLoad_UnknownCommandType(t *testing.T) {
	content := `
command:
  - type: archive
    source: a
`
	_, err := config.Load(writeConfig(t, content), true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCommandShape))
}

func TestLoad_CommandMissingRequiredField(t *testing.T) {
	content := `
command:
  - type: copy
    source: a
`
	_, err := config.Load(writeConfig(t, content), true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCommandShape))
}

func TestLoad_CommandMixingVariants(t *testing.T) {
	content := `
command:
  - type: run
    command: echo hi
    regex: x
    replacement: y
    source: z
`
	_, err := config.Load(writeConfig(t, content), true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCommandShape))
}

func TestLoad_RoundTripEquivalence(t *testing.T) {
	// A document with references, loaded with substitution, must decode to
	// the same configuration as the pre-substituted document loaded without.
	withDefines := `
define_items:
  - key: name
    value: myapp
command:
  - type: run
    command: tar -czf ${name}.tar.gz ${name}/
`
	resolved := `
define_items:
  - key: name
    value: myapp
command:
  - type: run
    command: tar -czf myapp.tar.gz myapp/
`
	got, err := config.Load(writeConfig(t, withDefines), true)
	require.NoError(t, err)

	want, err := config.Load(writeConfig(t, resolved), false)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestLoader_ImplementsPort(t *testing.T) {
	content := `
command:
  - type: run
    command: "true"
`
	l := config.NewLoader(nil)
	cfg, err := l.Load(writeConfig(t, content))
	require.NoError(t, err)
	assert.Len(t, cfg.Commands, 1)
}
