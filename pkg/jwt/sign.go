package jwt

import (
	"crypto/hmac"

	"github.com/tokenforge/jwtkit/pkg/base64url"
)

// Sign computes the signature segment for message, which callers build as
// "{base64url(header)}.{base64url(payload)}". The digest is base64url-encoded
// raw bytes, not hex.
//
// The "none" algorithm returns an empty string without touching the secret.
// Unsupported identifiers fail with ErrUnsupportedAlgorithm; the secret is
// never echoed in an error.
func Sign(message []byte, secret, algorithm string) (string, error) {
	if algorithm == None {
		return "", nil
	}

	mac, err := digest(message, secret, algorithm)
	if err != nil {
		return "", err
	}
	return base64url.Encode(mac), nil
}

// digest returns the raw HMAC bytes for message keyed by secret.
func digest(message []byte, secret, algorithm string) ([]byte, error) {
	newHash, err := hashFor(algorithm)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(newHash, []byte(secret))
	mac.Write(message)
	return mac.Sum(nil), nil
}
