package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/remindex/internal/testutil"
)

func populatedContainer(t *testing.T) string {
	t.Helper()
	f, dir := testutil.DefaultStore(t)
	f.AddSection("S1", "Groceries")
	f.AddSection("S2", "Hardware")
	f.AddReminder("R1", "ek-abc")
	f.AddReminder("R2", "ek-def")
	f.AddMemberships(
		testutil.MembershipEntry{MemberID: "R1", GroupID: "S1"},
		testutil.MembershipEntry{MemberID: "R2", GroupID: "S2"},
	)
	f.Close()
	return dir
}

func TestResolve_TextOutput(t *testing.T) {
	dir := populatedContainer(t)

	out, err := execute(t, "resolve", "--container", dir)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "resolve_text", []byte(out))
}

func TestResolve_EmptyContainerIsSuccess(t *testing.T) {
	out, err := execute(t, "resolve", "--container", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestResolve_MissingContainerIsSuccess(t *testing.T) {
	out, err := execute(t, "resolve", "--container", filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestResolve_JSONOutput(t *testing.T) {
	dir := populatedContainer(t)

	out, err := execute(t, "resolve", "--container", dir, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Groceries", data["ek-abc"])
	assert.Equal(t, "Hardware", data["ek-def"])
}

func TestResolve_YAMLOutput(t *testing.T) {
	dir := populatedContainer(t)

	out, err := execute(t, "resolve", "--container", dir, "--format", "yaml")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "resolve_yaml", []byte(out))
}

func TestResolve_PinnedStoreFile(t *testing.T) {
	f := testutil.CreateStore(t, t.TempDir(), "Pinned.sqlite")
	f.AddSection("S1", "Inbox")
	f.AddReminder("R1", "ek-xyz")
	f.AddMemberships(testutil.MembershipEntry{MemberID: "R1", GroupID: "S1"})
	f.Close()

	out, err := execute(t, "resolve", "--db", f.Path)
	require.NoError(t, err)
	assert.Equal(t, "ek-xyz\tInbox\n", out)
}

func TestResolve_VerboseKeepsStdoutClean(t *testing.T) {
	dir := populatedContainer(t)

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "none.yaml"),
		"--verbose", "resolve", "--container", dir,
	})

	require.NoError(t, cmd.Execute())
	// Diagnostics go to stderr via the logger; stdout stays parseable.
	assert.Equal(t, "ek-abc\tGroceries\nek-def\tHardware\n", out.String())
}
