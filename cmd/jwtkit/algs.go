package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokenforge/jwtkit/pkg/jwt"
)

func newAlgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algs",
		Short: "List the algorithms the engine can sign with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, alg := range jwt.SupportedAlgorithms() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", alg, jwt.Description(alg))
			}
			return nil
		},
	}
}
