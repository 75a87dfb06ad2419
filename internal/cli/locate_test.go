package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_PrintsSelectedStore(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "Data-stale.sqlite")
	fresh := filepath.Join(dir, "Data-fresh.sqlite")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0o644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	out, err := execute(t, "locate", "--container", dir)
	require.NoError(t, err)
	assert.Equal(t, fresh, strings.TrimSpace(out))
}

func TestLocate_NoCandidateExitsWithCommandError(t *testing.T) {
	_, err := execute(t, "locate", "--container", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "no store file found")
}

func TestLocate_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Data-only.sqlite")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	out, err := execute(t, "locate", "--container", dir, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, path, data["store"])
}

func TestLocate_JSONErrorEnvelope(t *testing.T) {
	out, err := execute(t, "locate", "--container", t.TempDir(), "--format", "json")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "no_store", resp.Error.Code)
}
