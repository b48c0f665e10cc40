package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "version command shows version info",
			args:     []string{"version"},
			contains: []string{"Podcaster API", "Version:      v" + Version, "Go Version:"},
		},
		{
			name:     "version command with --short flag",
			args:     []string{"version", "--short"},
			contains: []string{"v" + Version},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)
			t.Cleanup(func() { _ = versionCmd.Flags().Set("short", "false") })

			require.NoError(t, cmd.Execute())
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestVersionCommand_ShortIsOneLine(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version", "-s"})
	t.Cleanup(func() { _ = versionCmd.Flags().Set("short", "false") })

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
