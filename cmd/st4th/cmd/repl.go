package cmd

import (
	"context"
	"io"
	"os"

	"github.com/sforth/st4th/forth"
	"github.com/sforth/st4th/internal/logio"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive st4th session reading from stdin",
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	log := &logio.Logger{}
	log.SetOutput(os.Stderr)
	defer log.Close()

	// os.Stdout is wrapped so that e.Close flushes it without closing it.
	stdout := struct{ io.Writer }{os.Stdout}
	e := forth.New(engineOptions(os.Stdin, stdout, log.Leveledf("TRACE"))...)
	defer e.Close()

	if dumpEnabled {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		defer e.Dump(lw) //nolint:errcheck
	}

	ctx, cancel := withTimeout(context.Background())
	defer cancel()
	return e.Run(ctx)
}
