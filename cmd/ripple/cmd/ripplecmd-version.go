// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print ripple version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		WriteStdout("v%s (built %s)\n", RippleVersion, BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
