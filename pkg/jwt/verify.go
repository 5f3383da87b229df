package jwt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tokenforge/jwtkit/pkg/base64url"
)

// VerificationResult is the outcome of a Verify call. Err is set exactly
// when Valid is false.
type VerificationResult struct {
	Valid bool
	Err   error
}

// Verify recomputes the token's signature from its first two segments and
// the header's alg, and compares it to the third segment. Checks run in
// order and short-circuit at the first failure:
//
//  1. token and secret must both be non-empty (ErrMissingSecret)
//  2. the token must have exactly three segments (ErrMalformedToken)
//  3. the header must decode and carry an alg value (ErrMissingAlgorithm)
//  4. the recomputed signature must equal the token's (ErrInvalidSignature)
//
// Signature recomputation errors (such as an unsupported algorithm) are
// captured in the result rather than propagated.
//
// The payload segment is not required to decode; only the header's alg must
// be extractable. Note that the comparison is plain string equality and that
// alg "none" verifies against an empty signature segment; both behaviors are
// preserved from the reference engine and are exercised by tests. Use
// Service.Parse for constant-time comparison and an algorithm allow-list.
func Verify(token, secret string) VerificationResult {
	if token == "" || secret == "" {
		return VerificationResult{Err: ErrMissingSecret}
	}

	parts := strings.Split(token, ".")
	if len(parts) != tokenSegments {
		return VerificationResult{Err: ErrMalformedToken}
	}

	alg, err := headerAlgorithm(parts[0])
	if err != nil {
		return VerificationResult{Err: err}
	}

	expected, err := Sign([]byte(parts[0]+"."+parts[1]), secret, alg)
	if err != nil {
		return VerificationResult{Err: err}
	}

	if expected != parts[2] {
		return VerificationResult{Err: ErrInvalidSignature}
	}

	return VerificationResult{Valid: true}
}

// headerAlgorithm extracts the alg value from an encoded header segment.
func headerAlgorithm(segment string) (string, error) {
	raw, err := base64url.Decode(segment)
	if err != nil {
		return "", fmt.Errorf("decode header segment: %w", err)
	}

	var header map[string]any
	if err := json.Unmarshal(raw, &header); err != nil {
		return "", fmt.Errorf("parse header segment: %w: %v", ErrInvalidClaims, err)
	}

	alg, ok := header["alg"].(string)
	if !ok || alg == "" {
		return "", ErrMissingAlgorithm
	}
	return alg, nil
}
