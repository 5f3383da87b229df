package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(cfg Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jwtkit",
		Short: "Inspect, sign, and verify JSON Web Tokens",
		Long: `jwtkit works with compact JWTs signed by the HMAC family
(HS256, HS384, HS512) plus the unsigned "none" mode.

The signing secret is taken from --secret, falling back to the JWT_SECRET
environment variable (a .env file is loaded when present).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("secret", cfg.Secret, "shared secret for signing and verification (defaults to JWT_SECRET)")
	rootCmd.PersistentFlags().String("alg", cfg.Algorithm, "signing algorithm (defaults to JWT_ALG)")

	rootCmd.AddCommand(
		newDecodeCmd(),
		newSignCmd(),
		newVerifyCmd(),
		newAlgsCmd(),
	)
	return rootCmd
}

// secretFlag reads the resolved secret without ever logging it.
func secretFlag(cmd *cobra.Command) string {
	secret, _ := cmd.Flags().GetString("secret")
	return secret
}

func algFlag(cmd *cobra.Command) string {
	alg, _ := cmd.Flags().GetString("alg")
	return alg
}
