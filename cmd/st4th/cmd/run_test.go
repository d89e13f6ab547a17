package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every package-level flag variable to its zero value,
// since they are shared cobra.Command state across tests in this package.
func resetFlags(t *testing.T) {
	t.Helper()
	cfgFile, memLimit, dataDepth, returnDepth = "", 0, 0, 0
	traceEnabled, dumpEnabled, showStack = false, false, false
	welcomeBanner = ""
	timeout = 0
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

// stdinForTest replaces os.Stdin with a pipe preloaded with input, and
// returns a func that restores the original os.Stdin.
func stdinForTest(t *testing.T, input string) func() {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdin
	os.Stdin = r

	go func() {
		defer w.Close()
		io.WriteString(w, input) //nolint:errcheck
	}()

	return func() { os.Stdin = orig }
}

func runCommandWithContext() *cobra.Command {
	c := &cobra.Command{}
	c.SetContext(context.Background())
	return c
}

func TestRunFilesExecutesEachScript(t *testing.T) {
	resetFlags(t)
	path := filepath.Join("testdata", "square.fs")

	out := captureStdout(t, func() {
		err := runFiles(runCommandWithContext(), []string{path})
		require.NoError(t, err)
	})

	snaps.MatchSnapshot(t, out)
}

func TestRunFilesMissingFileReturnsWrappedError(t *testing.T) {
	resetFlags(t)
	err := runFiles(runCommandWithContext(), []string{filepath.Join("testdata", "does-not-exist.fs")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.fs")
}

func TestRunFilesAppliesConfigFile(t *testing.T) {
	resetFlags(t)
	cfgFile = filepath.Join("testdata", "st4th.toml")
	defer resetFlags(t)

	out := captureStdout(t, func() {
		err := runFiles(runCommandWithContext(), []string{filepath.Join("testdata", "square.fs")})
		require.NoError(t, err)
	})

	assert.Contains(t, out, "25 ok")
	assert.Equal(t, 8192, memLimit)
	assert.Equal(t, 32, dataDepth)
	assert.Equal(t, 128, returnDepth)
}

func TestRunFilesAppliesTimeout(t *testing.T) {
	resetFlags(t)
	timeout = time.Nanosecond
	defer resetFlags(t)

	err := runFiles(runCommandWithContext(), []string{filepath.Join("testdata", "square.fs")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestRunFilesDumpGoesToStderrNotStdout(t *testing.T) {
	resetFlags(t)
	dumpEnabled = true
	defer resetFlags(t)

	var stdout string
	stderr := captureStderr(t, func() {
		stdout = captureStdout(t, func() {
			err := runFiles(runCommandWithContext(), []string{filepath.Join("testdata", "square.fs")})
			require.NoError(t, err)
		})
	})

	assert.NotContains(t, stdout, "st4th engine dump")
	assert.Contains(t, stderr, "st4th engine dump")
}

func TestEngineOptionsHonorsFlags(t *testing.T) {
	resetFlags(t)
	memLimit = 4096
	dataDepth = 8
	defer resetFlags(t)

	opts := engineOptions(os.Stdin, io.Discard, nil)
	// input + output, plus one option each for --mem-limit and --data-depth
	assert.Len(t, opts, 4)
}
