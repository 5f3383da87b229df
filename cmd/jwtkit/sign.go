package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tokenforge/jwtkit/pkg/jwt"
)

func newSignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a claims JSON object into a token",
		Long: `Sign reads a JSON object of claims from --claims (or stdin when the flag
is omitted) and prints the signed compact token.

Example:
  jwtkit sign --secret s3cret --claims '{"sub":"user123","exp":1767225600}'
  echo '{"sub":"user123"}' | jwtkit sign --secret s3cret --alg HS512 --jti`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := secretFlag(cmd)
			alg := algFlag(cmd)
			if secret == "" && alg != jwt.None {
				return errors.New("a secret is required: pass --secret or set JWT_SECRET")
			}

			claims, err := readClaims(cmd)
			if err != nil {
				return err
			}

			if withJTI, _ := cmd.Flags().GetBool("jti"); withJTI {
				if _, ok := claims["jti"]; !ok {
					claims["jti"] = uuid.New().String()
				}
			}

			kid, _ := cmd.Flags().GetString("kid")
			var header jwt.Header
			if kid != "" {
				header = jwt.Header{"kid": kid}
			}

			token, err := jwt.Encode(header, claims, secret, alg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("claims", "", "claims JSON object (reads stdin when omitted)")
	cmd.Flags().String("kid", "", "key id to place in the token header")
	cmd.Flags().Bool("jti", false, "add a fresh uuid as the jti claim when absent")
	return cmd
}

func readClaims(cmd *cobra.Command) (jwt.Claims, error) {
	raw, _ := cmd.Flags().GetString("claims")
	if raw == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read claims from stdin: %w", err)
		}
		raw = string(data)
	}

	var claims jwt.Claims
	if err := json.Unmarshal([]byte(raw), &claims); err != nil {
		return nil, fmt.Errorf("claims must be a JSON object: %w", err)
	}
	return claims, nil
}
