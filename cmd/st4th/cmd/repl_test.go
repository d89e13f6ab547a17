package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunREPLEchoesOkPerLine(t *testing.T) {
	resetFlags(t)

	out := captureStdout(t, func() {
		origStdin := stdinForTest(t, "1 2 + .\n")
		defer origStdin()

		c := &cobra.Command{}
		require.NoError(t, runREPL(c, nil))
	})

	assert.Contains(t, out, "welcome to st4th")
	assert.Contains(t, out, "3 ok")
}
