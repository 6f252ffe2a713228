package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set via -ldflags at release time.
var Version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wikilabels version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wikilabels %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
