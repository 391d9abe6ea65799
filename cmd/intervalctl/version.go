package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// SEMVER is the release version of intervalctl.
const SEMVER = "0.1.0"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of intervalctl",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "intervalctl v%s (%s)\n", SEMVER, runtime.Version())
		},
	}
}
