package jwt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tokenforge/jwtkit/pkg/base64url"
)

// tokenSegments is the number of dot-separated segments in a compact JWT
// (header.payload.signature).
const tokenSegments = 3

// Header is the token's JOSE header: an open bag of string-keyed values.
// Well-known keys (alg, typ, kid) have typed accessors; unrecognized keys
// are preserved as-is so they survive a decode/encode round-trip.
type Header map[string]any

// Algorithm returns the alg header value, or "" when absent.
func (h Header) Algorithm() string { return stringValue(h, "alg") }

// Type returns the typ header value, or "" when absent.
func (h Header) Type() string { return stringValue(h, "typ") }

// KeyID returns the kid header value, or "" when absent.
func (h Header) KeyID() string { return stringValue(h, "kid") }

// Token is a decoded JWT. It is produced only by a successful Decode and is
// never partially populated. Signature holds the third segment verbatim;
// Decode neither decodes nor verifies it.
type Token struct {
	Header    Header
	Claims    Claims
	Signature string
}

// Decode splits a token into its three segments and parses the header and
// payload as JSON objects. It never verifies the signature; pair it with
// Verify when the token must be trusted.
func Decode(token string) (*Token, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrEmptyToken
	}

	parts := strings.Split(token, ".")
	if len(parts) != tokenSegments {
		return nil, fmt.Errorf("%w: token must have %d dot-separated segments (header.payload.signature)", ErrMalformedToken, tokenSegments)
	}

	header, err := decodeObjectSegment(parts[0], "header")
	if err != nil {
		return nil, err
	}

	claims, err := decodeObjectSegment(parts[1], "payload")
	if err != nil {
		return nil, err
	}

	return &Token{
		Header:    Header(header),
		Claims:    Claims(claims),
		Signature: parts[2],
	}, nil
}

// decodeObjectSegment base64url-decodes one segment and unmarshals it as a
// JSON object. The segment name keeps error messages actionable without
// leaking any token content.
func decodeObjectSegment(segment, name string) (map[string]any, error) {
	raw, err := base64url.Decode(segment)
	if err != nil {
		return nil, fmt.Errorf("decode %s segment: %w", name, err)
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("parse %s segment: %w: %v", name, ErrInvalidClaims, err)
	}
	return obj, nil
}

// stringValue reads a string-typed entry from an open claim bag.
func stringValue(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
