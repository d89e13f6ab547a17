package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWordsListsKnownPrimitives(t *testing.T) {
	resetFlags(t)

	out := captureStdout(t, func() {
		require.NoError(t, runWords(runCommandWithContext(), nil))
	})

	assert.Contains(t, out, "DUP")
	assert.Contains(t, out, "EMIT")
}

func TestRunVersionPrintsTheConfiguredVersion(t *testing.T) {
	out := captureStdout(t, func() {
		versionCmd.Run(versionCmd, nil)
	})

	assert.Contains(t, out, Version)
}
