// Package collector_test exercises the payload sink through its public API.
package collector_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Olivier-cousineau/econo-econo/internal/collector"
)

type fixedTestClock struct{}

func (fixedTestClock) Now() time.Time {
	return time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
}

func TestWritePayloadCreatesParentDirectories(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "data", "nested", "liquidations.json")

	sink := collector.NewFileSystemSink(zap.NewNop())
	payload := collector.DemoPayload(fixedTestClock{})

	require.NoError(t, sink.WritePayload(payload, target))

	// #nosec G304 -- test reads from the controlled temp directory.
	raw, err := os.ReadFile(target)
	require.NoError(t, err)

	var decoded collector.Payload
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestWritePayloadLeavesNoTempFile(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "out.json")

	sink := collector.NewFileSystemSink(zap.NewNop())
	require.NoError(t, sink.WritePayload(collector.DemoPayload(fixedTestClock{}), target))

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
}

func TestWritePayloadReplacesPreviousSnapshot(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "out.json")
	require.NoError(t, os.WriteFile(target, []byte("{\"stale\": true}"), 0o600))

	sink := collector.NewFileSystemSink(zap.NewNop())
	require.NoError(t, sink.WritePayload(collector.DemoPayload(fixedTestClock{}), target))

	// #nosec G304 -- test reads from the controlled temp directory.
	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "stale")

	var decoded collector.Payload
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "demo", decoded.Source)
}

func TestWritePayloadKeepsNonASCIILiteral(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "out.json")

	sink := collector.NewFileSystemSink(zap.NewNop())
	require.NoError(t, sink.WritePayload(collector.DemoPayload(fixedTestClock{}), target))

	// #nosec G304 -- test reads from the controlled temp directory.
	raw, err := os.ReadFile(target)
	require.NoError(t, err)

	content := string(raw)
	assert.Contains(t, content, "Saint-Jérôme", "accented characters must not be escaped")
	assert.NotContains(t, content, `é`)
	assert.Contains(t, content, "https://www.walmart.ca/ip/6000191234567", "URLs must not be HTML-escaped")
	assert.True(t, strings.HasPrefix(content, "{\n  \""), "payload should be indented")
}
