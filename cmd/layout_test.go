package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutCmd_EndToEnd(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	writeProjectFile(t, "app/views/layouts/users.html.erb", "<%= yield %>\n")
	writeProjectFile(t, "app/controllers/users_controller.rb", "class UsersController\n  layout \"users\"\nend\n")

	cmd := newRootCmd()
	cmd.AddCommand(newLayoutCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"layout", "users", "clients",
		"-y", "--log-file", filepath.Join(tempDir, "railmv.log"),
	})

	require.NoError(t, cmd.Execute())

	_, err := os.Stat("app/views/layouts/clients.html.erb")
	require.NoError(t, err)

	content, err := os.ReadFile("app/controllers/users_controller.rb")
	require.NoError(t, err)
	assert.Contains(t, string(content), "layout \"clients\"")
}
