package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teller-dev/teller/internal/commands"
	"github.com/teller-dev/teller/internal/config"
)

// runTeller executes the command tree in-process with the given stdin.
func runTeller(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runTeller(t, "", "init", dir, "--config", filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote ")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "accounts.txt", cfg.Data.File)
	assert.False(t, cfg.Audit.Enabled)
	assert.True(t, cfg.Shell.SaveOnExit)
}

func TestInit_Flags(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runTeller(t, "", "init", dir, "--data-file", "bank.txt", "--audit", "--config", filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "bank.txt", cfg.Data.File)
	assert.True(t, cfg.Audit.Enabled)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("data:\n  file: keep.txt\n"), 0o644))

	_, _, err := runTeller(t, "", "init", dir, "--config", filepath.Join(dir, "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = runTeller(t, "", "init", dir, "--force", "--config", filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "accounts.txt", cfg.Data.File)
}

func TestInit_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new", "project")
	_, _, err := runTeller(t, "", "init", dir, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
}
