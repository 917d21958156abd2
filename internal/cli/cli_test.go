package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns stdout and stderr.
// Flags are package globals, so tests using it must not run in parallel.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag of every command to its default value.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(reset)
		for _, sub := range cmd.Commands() {
			sub.Flags().VisitAll(reset)
		}
	}
}

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// emptyConfig returns a config path that does not exist, so built-in
// defaults are used regardless of the user's config directory.
func emptyConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.toml")
}
