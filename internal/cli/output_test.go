package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Envelope(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeJSON(buf, map[string]string{"ek-abc": "Groceries"}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestWriteJSONError_Envelope(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeJSONError(buf, "no_store", "no store file found"))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "no_store", resp.Error.Code)
	assert.Equal(t, "no store file found", resp.Error.Message)
}

func TestWriteYAML_SortedKeys(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeYAML(buf, map[string]string{
		"zzz": "last",
		"aaa": "first",
	}))

	assert.Equal(t, "aaa: first\nzzz: last\n", buf.String())
}

func TestExitError_Message(t *testing.T) {
	err := NewExitError(ExitCommandError, "no store file found")
	assert.Equal(t, "no store file found", err.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExitError_Wrapping(t *testing.T) {
	cause := errors.New("permission denied")
	err := WrapExitError(ExitCommandError, "failed to open store", cause)

	assert.Equal(t, "failed to open store: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode_PlainError(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
}
