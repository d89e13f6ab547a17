package forth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These mirror spec.md section 8's literal end-to-end scenario table.

func TestEvaluateArithmeticAndPrint(t *testing.T) {
	newEngineTest("arith").withScript("1 2 + . ").expectOutput(t, "3 ok\n")
}

func TestEvaluateColonWordSquare(t *testing.T) {
	newEngineTest("square").withScript(`: SQR DUP * ; 5 SQR . `).expectOutput(t, "25 ok\n")
}

func TestEvaluateColonWordSquareAcrossLines(t *testing.T) {
	_, out := newEngineTest("square-lines").withScript(`: SQR DUP * ;`, `5 SQR . `).run(t)
	assert.Equal(t, "ok\n25 ok\n", out)
}

func TestEvaluateEmitRepeated(t *testing.T) {
	newEngineTest("star").withScript(`: STAR 42 EMIT ; STAR STAR STAR`).expectOutput(t, "***ok\n")
}

func TestEvaluateRecurseDoesNotLoopAtCompileTime(t *testing.T) {
	e, out := newEngineTest("recurse").withScript(`: F RECURSE ;`).run(t)
	assert.Equal(t, "ok\n", out)
	require.NotZero(t, e.dict.findWord("F"), "F should be visible (HIDDEN cleared) after RECURSE")
}

func TestEvaluateConstant(t *testing.T) {
	newEngineTest("constant").withScript(`10 CONSTANT TEN TEN TEN + . `).expectOutput(t, "20 ok\n")
}

func TestEvaluateVariable(t *testing.T) {
	newEngineTest("variable").withScript(`VARIABLE V 7 V ! V @ . `).expectOutput(t, "7 ok\n")
}

func TestEvaluateDotQuoteInsideColon(t *testing.T) {
	// parseRaw starts from the cursor left just past the "." token itself,
	// which is the separating space before the text -- st4th.c's parseraw
	// never skips it, so that leading space is part of the literal.
	newEngineTest("dotquote").withScript(`: G ." hi" ; G`).expectOutput(t, " hiok\n")
}

func TestEvaluateWordsListsCount(t *testing.T) {
	_, out := newEngineTest("words").withScript("WORDS").run(t)
	assert.Contains(t, out, "total)")
	assert.Contains(t, out, "DROP")
}

func TestEvaluateUnknownTokenAbortsLine(t *testing.T) {
	newEngineTest("unknown").withScript("1 BOGUS 2").expectOutput(t, "BOGUS?\n")
}

func TestEvaluateShowStackTracesBeforeTheWordRunsAndDumpsAfter(t *testing.T) {
	// st4th.c's loop prints "-> %s\n" before dispatching a token, then
	// dumps the stack after it runs, so a word that prints as it runs
	// (like "." here) must have its own output land after the trace line,
	// not before it.
	_, out := newEngineTest("showstack").
		withOptions(WithShowStack(true)).
		withScript("5 .").
		run(t)

	traceIdx := strings.Index(out, "-> .\n")
	require.NotEqual(t, -1, traceIdx, "expected a \"-> .\" trace line")
	printIdx := strings.Index(out, "5 ")
	require.NotEqual(t, -1, printIdx, "expected \".\" to print 5")
	assert.Less(t, traceIdx, printIdx, "trace line must precede the word's own output")
}

func TestEvaluateUnknownTokenKeepsDictionaryAndStack(t *testing.T) {
	e, out := newEngineTest("unknown-state").withScript("1 2 BOGUS").run(t)
	assert.Equal(t, "BOGUS?\n", out)
	assert.Equal(t, 2, e.data.Depth())
}

func TestEvaluateStackUnderflowDiagnostic(t *testing.T) {
	newEngineTest("underflow").withScript("DROP").expectOutput(t, "ok\ndata stack underflow\n")
}

func TestEvaluateStackOverflowDiagnostic(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString("1 ")
	}
	_, out := newEngineTest("overflow").withOptions(WithDataStackDepth(16)).withScript(sb.String()).run(t)
	assert.Contains(t, out, "data stack overflow")
}

func TestEvaluateImmediateRunsDuringCompile(t *testing.T) {
	// IMMEDIATE words run even while compiling: ( runs and swallows the text
	// up to ')', so none of those words is looked up or compiled (an unknown
	// one would print "THIS?") and NOP ends up with an empty body.
	newEngineTest("comment").withScript(`: NOP ( this is ignored ) ; NOP .S`).expectOutput(t, "ok\n")
}

func TestEvaluateDictionaryLookupPrefersNewest(t *testing.T) {
	e, _ := newEngineTest("shadow").withScript("1 CONSTANT X 2 CONSTANT X").run(t)
	w := e.dict.findWord("X")
	require.NotZero(t, w)
	assert.Equal(t, Cell(2), e.dict.get(w).value)
}

func TestEvaluateHereNeverDecreases(t *testing.T) {
	e, _ := newEngineTest("here-monotonic").withScript(": A 1 2 3 ;").run(t)
	h1 := e.arena.Here()
	e.Evaluate(": B 4 5 6 ;")
	h2 := e.arena.Here()
	assert.GreaterOrEqual(t, uint32(h2), uint32(h1))
}
