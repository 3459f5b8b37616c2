package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		config       string
		args         []string
		expectedExit int
	}{
		{
			name: "Success with valid config",
			config: `
define_items:
  - key: marker
    value: ok.txt
command:
  - type: run
    command: touch ${marker}
`,
			args:         []string{"pakr", "run", "-c", "pakr.yaml"},
			expectedExit: 0,
		},
		{
			name: "Failing command exits nonzero",
			config: `
command:
  - type: run
    command: sh -c "exit 1"
`,
			args:         []string{"pakr", "run", "-c", "pakr.yaml"},
			expectedExit: 1,
		},
		{
			name:         "Error with missing config",
			args:         []string{"pakr", "run", "-c", "nonexistent.yaml"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			if tt.config != "" {
				err := os.WriteFile(filepath.Join(tmpDir, "pakr.yaml"), []byte(tt.config), 0o600)
				if err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			}

			// Change to tmpDir for relative path resolution
			originalWd, _ := os.Getwd()
			err := os.Chdir(tmpDir)
			if err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
