package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("hold created: id=%s", "abc")
	log.Debug("must be filtered out by level")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, `"msg":"hold created: id=abc"`)
	assert.Contains(t, content, `"level":"INFO"`)
	assert.NotContains(t, content, "must be filtered out")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	log := NewNop()
	log.Info("info %d", 1)
	log.Warn("warn %d", 2)
	log.Error("error %d", 3)
	assert.NoError(t, log.Close())
}
