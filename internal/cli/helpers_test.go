package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
