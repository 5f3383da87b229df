package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tokenforge/jwtkit/pkg/jwt"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <token>",
		Short: "Decode a token without verifying its signature",
		Long: `Decode splits the token into header, payload, and signature, prints the
header and payload as JSON, and summarizes the temporal claims. The
signature is not checked; use "jwtkit verify" for that.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := jwt.Decode(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := printJSON(out, "Header", token.Header); err != nil {
				return err
			}
			if err := printJSON(out, "Payload", token.Claims); err != nil {
				return err
			}

			now := time.Now().Unix()
			fmt.Fprintf(out, "Algorithm:      %s (%s)\n", token.Header.Algorithm(), jwt.Description(token.Header.Algorithm()))
			fmt.Fprintf(out, "Time remaining: %s\n", token.Claims.TimeRemaining(now))
			fmt.Fprintf(out, "Token age:      %s\n", token.Claims.Age(now))

			if exp, ok := token.Claims.ExpiresAt(); ok {
				fmt.Fprintf(out, "Expires at:     %s\n", jwt.FormatTimestamp(exp))
			}
			if nbf, ok := token.Claims.NotBefore(); ok {
				fmt.Fprintf(out, "Not before:     %s\n", jwt.FormatTimestamp(nbf))
			}
			if iat, ok := token.Claims.IssuedAt(); ok {
				fmt.Fprintf(out, "Issued at:      %s\n", jwt.FormatTimestamp(iat))
			}
			return nil
		},
	}
}

func printJSON(out io.Writer, label string, v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("render %s: %w", label, err)
	}
	fmt.Fprintf(out, "%s:\n%s\n", label, pretty)
	return nil
}
