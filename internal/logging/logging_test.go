package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWithSink_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log, flush := NewWithSink(zapcore.AddSync(&buf), false, false)

	log.Info("Listed objects", "count", 3)
	log.V(1).Info("Skipping object")
	flush()

	out := buf.String()
	assert.Contains(t, out, "Listed objects")
	assert.NotContains(t, out, "Skipping object")
}

func TestNewWithSink_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	log, flush := NewWithSink(zapcore.AddSync(&buf), false, true)

	log.V(1).Info("Skipping object", "key", "prod/TN-ABC/report")
	flush()

	assert.Contains(t, buf.String(), "Skipping object")
}

func TestNewWithSink_JSONEncoding(t *testing.T) {
	var buf bytes.Buffer
	log, flush := NewWithSink(zapcore.AddSync(&buf), false, false)

	log.Error(errors.New("copy failed"), "Failed to copy settlement file", "key", "prod/TN-ABC/report.csv")
	flush()

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "Failed to copy settlement file", entry["msg"])
	assert.Equal(t, "prod/TN-ABC/report.csv", entry["key"])
	assert.Equal(t, "copy failed", entry["error"])
}

func TestNewWithSink_ConsoleEncoding(t *testing.T) {
	var buf bytes.Buffer
	log, flush := NewWithSink(zapcore.AddSync(&buf), true, false)

	log.Info("Run finished", "succeeded", 2)
	flush()

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "Run finished")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}
