package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the st4th version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("st4th version", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
