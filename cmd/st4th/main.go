// Command st4th is the process entry point for the st4th Forth engine:
// an interactive REPL, a batch script runner, and small introspection
// subcommands, all thin wrappers over package forth.
package main

import "github.com/sforth/st4th/cmd/st4th/cmd"

func main() {
	cmd.Execute()
}
