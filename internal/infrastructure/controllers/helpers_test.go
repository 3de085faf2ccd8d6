//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testConfig = `server_url: https://api.example.com
web_url: https://app.example.com
token: secret
team_id: team-1
git:
  path: /opt/git/bin/git
  minimum_version: 2.10.0
telemetry:
  enabled: false
`

// newCommand returns a command wired with a --config flag pointing at a
// temporary config file, and the buffer capturing its output.
func newCommand(t *testing.T, config string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codestream.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", path, "")
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	return cmd, out
}
