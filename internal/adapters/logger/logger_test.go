package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pakr/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_WritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("copying files")
	l.Warn("nothing to do")
	l.Error(zerr.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "copying files")
	assert.Contains(t, out, "nothing to do")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "level=ERROR")
}
