package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sforth/st4th/forth"
	"github.com/sforth/st4th/internal/logio"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Run one or more st4th source files",
	Long: `Run executes each given file against its own independent Engine.

Each Engine is internally strictly sequential (per spec.md section 5), but
because no state is shared between Engines, files are fanned out across an
errgroup and run concurrently; their output is buffered per-file and
written to stdout in argument order once all of them have finished, so
interleaved scripts never garble each other's output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFiles,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	log := &logio.Logger{}
	log.SetOutput(os.Stderr)
	defer log.Close()

	runCtx, cancel := withTimeout(cmd.Context())
	defer cancel()

	buffers := make([]bytes.Buffer, len(args))
	g, ctx := errgroup.WithContext(runCtx)

	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("st4th run: %s: %w", path, err)
			}
			defer f.Close()

			tracef := log.Leveledf("TRACE")
			logf := func(mess string, a ...interface{}) {
				tracef(path+": "+mess, a...)
			}
			e := forth.New(engineOptions(f, &buffers[i], logf)...)
			defer e.Close()

			if dumpEnabled {
				lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
				defer lw.Close()
				defer e.Dump(lw) //nolint:errcheck
			}

			if err := e.Run(ctx); err != nil {
				return fmt.Errorf("st4th run: %s: %w", path, err)
			}
			return nil
		})
	}

	runErr := g.Wait()
	for i := range args {
		os.Stdout.Write(buffers[i].Bytes()) //nolint:errcheck
	}
	return runErr
}
