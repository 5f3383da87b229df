package jwt

import (
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tokenforge/jwtkit/pkg/base64url"
)

// StandardClaims holds the RFC 7519 registered claims for use with the
// Service layer. Embed it in a custom struct to add application claims.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Service generates and parses HS256 tokens with a fixed signing key.
// Unlike the low-level Verify, Parse rejects every algorithm except HS256,
// compares signatures in constant time, and validates exp and nbf against
// the current clock.
type Service struct {
	signingKey []byte
}

// New creates a Service with the given signing key.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromString creates a Service from a string signing key.
func NewFromString(signingKey string) (*Service, error) {
	return New([]byte(signingKey))
}

// Generate signs claims into a compact HS256 token. Claims may be any
// JSON-serializable value; StandardClaims or a struct embedding it is
// typical.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	headerJSON, err := json.Marshal(Header{"alg": HS256, "typ": "JWT"})
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	signingInput := base64url.Encode(headerJSON) + "." + base64url.Encode(claimsJSON)

	signature, err := Sign([]byte(signingInput), string(s.signingKey), HS256)
	if err != nil {
		return "", err
	}

	return signingInput + "." + signature, nil
}

// Parse verifies token and unmarshals its payload into claims, which must
// be a non-nil pointer. Verification order: structure, algorithm allow-list,
// constant-time signature check, then temporal claims (exp, nbf) against
// time.Now().
func (s *Service) Parse(token string, claims any) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	parts := strings.Split(token, ".")
	if len(parts) != tokenSegments {
		return fmt.Errorf("%w: token must have %d dot-separated segments (header.payload.signature)", ErrMalformedToken, tokenSegments)
	}

	alg, err := headerAlgorithm(parts[0])
	if err != nil {
		return err
	}
	if alg != HS256 {
		return fmt.Errorf("%w: %s", ErrUnexpectedSigningMethod, alg)
	}

	expected, err := digest([]byte(parts[0]+"."+parts[1]), string(s.signingKey), alg)
	if err != nil {
		return err
	}

	signature, err := base64url.Decode(parts[2])
	if err != nil {
		return ErrInvalidSignature
	}
	if !hmac.Equal(expected, signature) {
		return ErrInvalidSignature
	}

	payload, err := base64url.Decode(parts[1])
	if err != nil {
		return fmt.Errorf("decode payload segment: %w", err)
	}

	var temporal Claims
	if err := json.Unmarshal(payload, &temporal); err != nil {
		return fmt.Errorf("parse payload segment: %w: %v", ErrInvalidClaims, err)
	}

	now := time.Now().Unix()
	if temporal.IsExpired(now) {
		return ErrExpiredToken
	}
	if temporal.IsNotYetValid(now) {
		return ErrNotYetValid
	}

	if err := json.Unmarshal(payload, claims); err != nil {
		return fmt.Errorf("unmarshal claims: %w: %v", ErrInvalidClaims, err)
	}
	return nil
}
