package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
)

func TestRootCmd(t *testing.T) {
	t.Run("should setup deps for chat in noop mode", func(t *testing.T) {
		container := dig.New()
		rootCmd := newRootCmd(container)
		rootCmd.AddCommand(newChatCmd(container), newSendCmd(container))
		rootCmd.SetArgs([]string{
			"chat", "Bob", "Eric",
			"--noop",
			"-e", "test",
			"--logs-file", filepath.Join(t.TempDir(), "client.log"),
		})
		require.NoError(t, rootCmd.Execute())
	})
	t.Run("should require name and peer", func(t *testing.T) {
		container := dig.New()
		rootCmd := newRootCmd(container)
		rootCmd.AddCommand(newChatCmd(container), newSendCmd(container))
		rootCmd.SetArgs([]string{"send", "Bob", "Eric"})
		require.Error(t, rootCmd.Execute())
	})
}
