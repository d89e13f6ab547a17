// Package cmd implements the st4th command-line tree.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"

	cfgFile       string
	memLimit      int
	dataDepth     int
	returnDepth   int
	traceEnabled  bool
	dumpEnabled   bool
	showStack     bool
	welcomeBanner string
	timeout       time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "st4th",
	Short: "st4th is a minimal Forth interpreter and compiler",
	Long: `st4th hosts both primitive words and colon words (composed of other
words via threaded code) in a single linear memory arena. Run it with no
subcommand for an interactive REPL, or "st4th run" to execute scripts.`,
	Version:       Version,
	RunE:          runREPL,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// config is the shape of an optional TOML file loaded via --config,
// letting a deployment fix arena/stack sizing and the startup banner
// without passing a long flag line every time.
type config struct {
	ArenaSize   int    `toml:"arena_size"`
	DataDepth   int    `toml:"data_stack_depth"`
	ReturnDepth int    `toml:"return_stack_depth"`
	Welcome     string `toml:"welcome_banner"`
}

// Execute runs the root command, printing and exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().IntVar(&memLimit, "mem-limit", 0, "arena size in bytes (0 = default 64 KiB)")
	rootCmd.PersistentFlags().IntVar(&dataDepth, "data-depth", 0, "data stack depth (0 = default 16)")
	rootCmd.PersistentFlags().IntVar(&returnDepth, "return-depth", 0, "return stack depth (0 = default 64)")
	rootCmd.PersistentFlags().BoolVar(&traceEnabled, "trace", false, "log each dispatched word to stderr")
	rootCmd.PersistentFlags().BoolVar(&dumpEnabled, "dump", false, "print an engine dump after execution")
	rootCmd.PersistentFlags().BoolVar(&showStack, "show-stack", false, "start with SHOWSTACK already toggled on")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "cancel the run after this long (0 = no limit)")
}

// loadConfig applies an optional --config file over the current flag
// values: flags win when explicitly set, the file fills in the rest.
func loadConfig() (config, error) {
	var cfg config
	if cfgFile == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(cfgFile, &cfg); err != nil {
		return cfg, fmt.Errorf("st4th: reading config %s: %w", cfgFile, err)
	}
	if memLimit == 0 {
		memLimit = cfg.ArenaSize
	}
	if dataDepth == 0 {
		dataDepth = cfg.DataDepth
	}
	if returnDepth == 0 {
		returnDepth = cfg.ReturnDepth
	}
	if welcomeBanner == "" {
		welcomeBanner = cfg.Welcome
	}
	return cfg, nil
}

func exitWithError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "st4th: "+msg+"\n", args...)
	os.Exit(1)
}
