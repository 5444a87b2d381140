// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// defaultArenaSize bounds the worst-case info record the CLI will
// materialize; large enough for any realistic license, never grown.
const defaultArenaSize = 64 * 1024

func newInfoCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info <license-file>",
		Short: "Print the vendor/product/part/feature tree of a license",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := buildVerifier(*configPath)
			if err != nil {
				return err
			}
			license, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			lic, err := v.GetInfo(license, defaultArenaSize)
			if err != nil {
				return err
			}
			fmt.Print(lic.String())
			return nil
		},
	}
}
