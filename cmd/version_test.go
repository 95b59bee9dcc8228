package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newVersionCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[0] == "version: unknown" {
		assert.Len(t, lines, 1)
		return
	}

	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "testgenie version\t"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "go version\t"), lines[1])
}
