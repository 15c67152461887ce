package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"gutengrep/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("open moby.txt...")

	assert.Contains(t, buf.String(), "open moby.txt...")
}

func TestLogger_Warn(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Warn("skipping broken.txt")

	assert.Contains(t, buf.String(), "skipping broken.txt")
	assert.Contains(t, buf.String(), "!")
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	err := zerr.Wrap(errors.New("root cause"), "outer layer")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: outer layer")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "root cause")
}

func TestLogger_Error_Nil(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetJSON(true)

	l.Info("hello")

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
