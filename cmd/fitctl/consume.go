// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newConsumeCmd(configPath *string) *cobra.Command {
	var featureID uint16

	cmd := &cobra.Command{
		Use:   "consume <license-file>",
		Short: "Check whether a feature is currently permitted",
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
			status, err := v.Consume(context.Background(), license, featureID)
			fmt.Println(status)
			if err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().Uint16Var(&featureID, "feature-id", 0, "feature id to check")
	return cmd
}
