/*
Package forth implements st4th, a minimalistic Forth interpreter and
compiler.

FORTH is a language mostly familiar to users of "small" machines: programs
are small because they are interpreted (a word call is a single cell), and
the language is extensible because built-in primitives are indistinguishable
from user-defined words. An interpreter can afford to be tiny because most of
the system can be written in Forth itself; only a small, closed set of
primitives has to be implemented by the host.

st4th is that small set. It hosts both primitive words (implemented here in
Go) and colon words (composed of other words as threaded code) in a single
linear arena: one bump-allocated byte region supplies the dictionary's data
area, variable and CREATEd storage, string literals, compiled threaded code
and the MODE flag cell all at once. Everything else -- stacks, dictionary
headers -- is state hung off an Engine value, not global state, so a program
can run any number of independent sessions concurrently.

The outer interpreter (Evaluate) tokenizes a line, looks each token up in
the dictionary, and either runs it immediately or appends it to the word
currently being compiled, falling back to parsing a decimal integer when a
token isn't a known word. The inner interpreter walks an instruction pointer
across a colon word's threaded body, dispatching each cell through the
primitive function named by its word header.

See forth/engine.go for the Engine type that ties all of this together, and
forth/words.go for the full list of primitive words installed at start-up.
*/
package forth
