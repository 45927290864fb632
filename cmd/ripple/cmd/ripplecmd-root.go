// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/wavetermdev/ripple/config"
)

var RippleVersion = "0.0.0"
var BuildTime = "0"

var (
	rootCmd = &cobra.Command{
		Use:               "ripple",
		Short:             "ripple - an incremental fiber renderer",
		Long:              `ripple renders view trees into host trees incrementally, in small interruptible units of work.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
	}
)

var configPath string
var verboseFlag bool

// loaded by the root command before any subcommand runs
var Settings = config.Default()

var WrappedStdout io.Writer = os.Stdout
var WrappedStderr io.Writer = os.Stderr

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every render and commit")
}

func WriteStderr(fmtStr string, args ...interface{}) {
	WrappedStderr.Write([]byte(fmt.Sprintf(fmtStr, args...)))
}

func WriteStdout(fmtStr string, args ...interface{}) {
	WrappedStdout.Write([]byte(fmt.Sprintf(fmtStr, args...)))
}

func loadSettings(cmd *cobra.Command, args []string) error {
	settings := config.Default()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if verboseFlag {
		settings.Engine.Verbose = true
	}
	Settings = settings
	return nil
}

func makeLogger() *log.Logger {
	return log.New(WrappedStderr, "", log.LstdFlags)
}

func getIsTty() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		WriteStderr("[error] %v\n", err)
		os.Exit(1)
	}
}
