package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	table := []struct {
		level string
		debug bool
		info  bool
		warn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"bogus", false, true, true},
	}

	for _, item := range table {
		logger := New(item.level, "console", &bytes.Buffer{})
		assert.Equal(t, item.debug, logger.Core().Enabled(zap.DebugLevel), item.level)
		assert.Equal(t, item.info, logger.Core().Enabled(zap.InfoLevel), item.level)
		assert.Equal(t, item.warn, logger.Core().Enabled(zap.WarnLevel), item.level)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "json", &buf)
	logger.Info("course removed", zap.String("course", "Algorithms"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "course removed", entry["msg"])
	assert.Equal(t, "Algorithms", entry["course"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "console", &buf)
	logger.Warn("course not found", zap.String("course", "Nonexistent"))

	line := buf.String()
	assert.True(t, strings.Contains(line, "WARN"))
	assert.True(t, strings.Contains(line, "course not found"))
	assert.True(t, strings.Contains(line, `"course": "Nonexistent"`))
}
