package cmd

import (
	"io"
	"os"

	"github.com/sforth/st4th/forth"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List every primitive word installed at start-up",
	RunE:  runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	// os.Stdout is wrapped so that e.Close flushes it without closing it.
	e := forth.New(forth.WithOutput(struct{ io.Writer }{os.Stdout}))
	defer e.Close()
	e.Evaluate("WORDS")
	return nil
}
