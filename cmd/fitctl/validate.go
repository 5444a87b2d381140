// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <license-file>",
		Short: "Check signature and fingerprint without a feature lookup",
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
			status, err := v.Validate(context.Background(), license)
			fmt.Println(status)
			return err
		},
	}
}
