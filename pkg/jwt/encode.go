package jwt

import (
	"encoding/json"
	"fmt"

	"github.com/tokenforge/jwtkit/pkg/base64url"
)

// Encode assembles and signs a compact token from a header and claims.
// An empty algorithm defaults to HS256.
//
// The header is normalized before signing: alg is always set to the
// requested algorithm (overwriting any caller-supplied value) and typ
// defaults to "JWT" only when the caller did not provide one. The caller's
// maps are never mutated. Claim semantics are not validated; callers decide
// what exp, nbf, and iat should hold.
func Encode(header Header, claims Claims, secret, algorithm string) (string, error) {
	if algorithm == "" {
		algorithm = HS256
	}
	if claims == nil {
		claims = Claims{}
	}

	headerJSON, err := json.Marshal(normalizeHeader(header, algorithm))
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	signingInput := base64url.Encode(headerJSON) + "." + base64url.Encode(claimsJSON)

	signature, err := Sign([]byte(signingInput), secret, algorithm)
	if err != nil {
		return "", err
	}

	return signingInput + "." + signature, nil
}

// normalizeHeader builds a fresh header with alg forced and typ defaulted,
// leaving the caller's map untouched.
func normalizeHeader(header Header, algorithm string) Header {
	normalized := make(Header, len(header)+2)
	for k, v := range header {
		normalized[k] = v
	}

	normalized["alg"] = algorithm
	if _, ok := normalized["typ"]; !ok {
		normalized["typ"] = "JWT"
	}
	return normalized
}
