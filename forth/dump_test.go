package forth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpReportsHereModeAndDictionary(t *testing.T) {
	e := New()
	e.Evaluate("1 2 3 CONSTANT THREE")

	var sb strings.Builder
	require.NoError(t, e.Dump(&sb))
	out := sb.String()

	assert.Contains(t, out, "st4th engine dump")
	assert.Contains(t, out, "here:")
	assert.Contains(t, out, "mode: 0")
	assert.Contains(t, out, "THREE")
	assert.Contains(t, out, "DROP")
}

func TestDumpShowsStackContentsTopFirst(t *testing.T) {
	e := New()
	e.Evaluate("1 2 3")

	var sb strings.Builder
	require.NoError(t, e.Dump(&sb))
	out := sb.String()

	assert.Contains(t, out, "data stack (top-first): [3 2 1]")
}

func TestDumpWordIsAbsentByDefault(t *testing.T) {
	e := New()
	assert.Zero(t, e.dict.findWord("DUMP"))
}

func TestDumpWordIsInstalledWithDebugWords(t *testing.T) {
	e := New(WithDebugWords())
	assert.NotZero(t, e.dict.findWord("DUMP"))
}

func TestDumpWordWritesToEngineOutput(t *testing.T) {
	_, out := newEngineTest("debug-dump").
		withOptions(WithDebugWords()).
		withScript("1 2 DUMP").
		run(t)

	assert.Contains(t, out, "st4th engine dump")
	assert.Contains(t, out, "data stack (top-first): [2 1]")
}

func TestDumpFlagsImmediateWords(t *testing.T) {
	e := New()
	var sb strings.Builder
	require.NoError(t, e.Dump(&sb))
	out := sb.String()

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == ";" {
			assert.Contains(t, line, "immediate", "the ; word must be flagged immediate in the dump")
			return
		}
	}
	t.Fatal("expected to find a dictionary line for ;")
}
