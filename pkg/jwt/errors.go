package jwt

import "errors"

// Package-level error definitions for token operations.
var (
	// ErrEmptyToken indicates an empty or all-whitespace token string.
	ErrEmptyToken = errors.New("token is empty")
	// ErrMalformedToken indicates the token does not have exactly three
	// dot-separated segments.
	ErrMalformedToken = errors.New("invalid token format")
	// ErrInvalidClaims indicates the header or payload segment is not a
	// valid JSON object.
	ErrInvalidClaims = errors.New("invalid claims payload")
	// ErrUnsupportedAlgorithm indicates an algorithm outside the signable set.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	// ErrMissingAlgorithm indicates a header without an alg value.
	ErrMissingAlgorithm = errors.New("no algorithm specified in header")
	// ErrMissingSecret indicates Verify was called without a token or secret.
	ErrMissingSecret = errors.New("token and secret are required")
	// ErrInvalidSignature indicates the signature does not match.
	ErrInvalidSignature = errors.New("signature verification failed")
	// ErrExpiredToken indicates the exp claim is in the past.
	ErrExpiredToken = errors.New("token has expired")
	// ErrNotYetValid indicates the nbf claim is in the future.
	ErrNotYetValid = errors.New("token is not yet valid")
	// ErrUnexpectedSigningMethod indicates the Service was given a token
	// signed with an algorithm it does not accept.
	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")
	// ErrMissingSigningKey indicates a Service was constructed without a key.
	ErrMissingSigningKey = errors.New("missing signing key")
	// ErrMissingClaims indicates Generate was called with nil claims.
	ErrMissingClaims = errors.New("missing claims")
)
