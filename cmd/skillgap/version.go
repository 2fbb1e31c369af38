package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the skillgap version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("%s %s\n", app, version)
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
