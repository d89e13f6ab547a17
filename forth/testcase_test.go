package forth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// engineTest is a small fluent builder for driving an Engine through a
// script and asserting on its output/stack, in the spirit of the
// teacher's vmTestCase.
type engineTest struct {
	name   string
	opts   []EngineOption
	script string
}

func newEngineTest(name string) engineTest { return engineTest{name: name} }

func (et engineTest) withOptions(opts ...EngineOption) engineTest {
	et.opts = append(et.opts, opts...)
	return et
}

func (et engineTest) withScript(lines ...string) engineTest {
	et.script = strings.Join(lines, "\n")
	return et
}

// run evaluates the script line by line (so per-line "ok"/diagnostics
// match spec.md's Evaluate contract exactly) and returns the Engine and
// its accumulated output for assertions.
func (et engineTest) run(t *testing.T) (*Engine, string) {
	t.Helper()
	var out strings.Builder
	opts := append([]EngineOption{WithOutput(&out)}, et.opts...)
	e := New(opts...)
	for _, line := range strings.Split(et.script, "\n") {
		e.Evaluate(line)
	}
	return e, out.String()
}

func (et engineTest) expectOutput(t *testing.T, want string) {
	t.Helper()
	_, out := et.run(t)
	assert.Equal(t, want, out)
}
