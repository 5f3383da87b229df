package jwt

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Signing algorithm identifiers. HS256, HS384, HS512, and None are the
// closed set the engine can execute; the remaining identifiers are
// recognized for description lookup only.
const (
	HS256 = "HS256"
	HS384 = "HS384"
	HS512 = "HS512"
	// None produces an empty signature. It exists for interoperability with
	// tokens that carry alg "none" and must never be treated as a secure mode.
	None = "none"

	RS256 = "RS256"
	RS384 = "RS384"
	RS512 = "RS512"
	ES256 = "ES256"
	ES384 = "ES384"
	ES512 = "ES512"
	PS256 = "PS256"
	PS384 = "PS384"
	PS512 = "PS512"
)

// descriptions maps algorithm identifiers to human-readable descriptions.
var descriptions = map[string]string{
	HS256: "HMAC with SHA-256",
	HS384: "HMAC with SHA-384",
	HS512: "HMAC with SHA-512",
	RS256: "RSASSA-PKCS1-v1_5 with SHA-256",
	RS384: "RSASSA-PKCS1-v1_5 with SHA-384",
	RS512: "RSASSA-PKCS1-v1_5 with SHA-512",
	ES256: "ECDSA with P-256 and SHA-256",
	ES384: "ECDSA with P-384 and SHA-384",
	ES512: "ECDSA with P-521 and SHA-512",
	PS256: "RSASSA-PSS with SHA-256",
	PS384: "RSASSA-PSS with SHA-384",
	PS512: "RSASSA-PSS with SHA-512",
	None:  "No digital signature or MAC",
}

// Description returns a human-readable description of the algorithm.
// Unknown identifiers yield a fallback that echoes the identifier rather
// than an error, so display code never has to handle a failure.
func Description(algorithm string) string {
	if desc, ok := descriptions[algorithm]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown algorithm: %s", algorithm)
}

// SupportedAlgorithms returns the closed list of algorithms Sign can execute.
func SupportedAlgorithms() []string {
	return []string{HS256, HS384, HS512, None}
}

// hashFor maps an HMAC algorithm identifier to its SHA-2 constructor.
func hashFor(algorithm string) (func() hash.Hash, error) {
	switch algorithm {
	case HS256:
		return sha256.New, nil
	case HS384:
		return sha512.New384, nil
	case HS512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}
}
