package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// chdirTemp moves the test into a fresh directory for the duration of t.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })

	return dir
}

func runInit(t *testing.T) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()

	return out.String(), err
}

func TestInitCmd_WritesDefaults(t *testing.T) {
	dir := chdirTemp(t)

	out, err := runInit(t)
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+configFileName+"\n", out)

	contents, err := os.ReadFile(filepath.Join(dir, configFileName))
	require.NoError(t, err)

	var written map[string]any
	require.NoError(t, yaml.Unmarshal(contents, &written))

	assert.Equal(t, defaultRunTests, written[runTestsConfigKey])
	require.Contains(t, written, "history")
	assert.Equal(t, defaultHistoryPath, written["history"].(map[string]any)["path"])
	require.Contains(t, written, "discovery")
	assert.Contains(t, written["discovery"], "include_keywords")
	require.Contains(t, written, "generator")
	assert.Contains(t, written["generator"], "model")
}

func TestInitCmd_KeepsExistingFile(t *testing.T) {
	dir := chdirTemp(t)

	targetPath := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("run_tests: never\n"), 0o644))

	out, err := runInit(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")
	assert.NotContains(t, out, "Wrote")

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "run_tests: never\n", string(contents))
}
