package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Olivier-cousineau/econo-econo/internal/collector"
)

func TestCollectDemoWritesSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "liquidations.json")

	root := newRootCmd()
	root.SetArgs([]string{"collect", "--demo", "--output", out})
	require.NoError(t, root.Execute())

	// #nosec G304 -- test reads from the controlled temp directory.
	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var payload collector.Payload
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "demo", payload.Source)
	assert.Equal(t, "clearance", payload.Query)
	assert.Len(t, payload.Stores, 2)
	assert.Len(t, payload.Items, 2)
}

func TestExitCodeMapping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitNoItems, exitCode(collector.ErrNoItems))
	assert.Equal(t, exitNoItems, exitCode(fmt.Errorf("wrapped: %w", collector.ErrNoItems)))
	assert.Equal(t, exitFailure, exitCode(errors.New("boom")))
}
