// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command fitctl is a host-side CLI wrapping the fit verification
// engine: consume, info, validate, and version subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "fitctl",
		Short: "Inspect and verify feature-it-to licenses",
	}

	flags := pflag.NewFlagSet("fitctl", pflag.ExitOnError)
	flags.StringVar(&configPath, "config", "fitctl.yaml", "path to fitctl config file")
	root.PersistentFlags().AddFlagSet(flags)

	root.AddCommand(
		newConsumeCmd(&configPath),
		newValidateCmd(&configPath),
		newInfoCmd(&configPath),
		newVersionCmd(),
	)
	return root
}
