package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opmodel/expressgen/internal/config"
	oerrors "github.com/opmodel/expressgen/internal/errors"
)

// isolateEnv points HOME at a temp dir and clears expressgen variables.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvBaseDir, "")
	t.Setenv(config.EnvLogTimestamps, "")
	return home
}

// executeCommand runs the root command with args and returns its stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := executeCommandWithStderr(t, args...)
	return stdout, err
}

// executeCommandWithStderr also returns the log output.
func executeCommandWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *oerrors.ExitError {
	t.Helper()
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %T: %v", err, err)
	require.Equal(t, code, exitErr.Code, "unexpected exit code for: %v", err)
	return exitErr
}
