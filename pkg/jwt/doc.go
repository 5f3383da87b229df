// Package jwt implements an RFC 7519 JSON Web Token engine for the HMAC
// family of algorithms (HS256, HS384, HS512) plus the unsigned "none" mode.
//
// The package exposes two layers:
//
//   - Low-level, stateless operations mirroring the token lifecycle:
//     Decode, Encode, Sign, and Verify. Each call is a pure function of its
//     inputs (token string, secret, algorithm, reference time); the package
//     holds no process-wide state.
//   - A key-holding Service with Generate and Parse for the common
//     HS256-with-validation workflow.
//
// # Decoding and inspection
//
// Decode splits a token into its three segments and parses the header and
// claims without verifying the signature. Decoding and verification are
// deliberately independent: inspecting an untrusted token is a valid use
// case (debuggers, analyzers), and trusting one is a separate decision.
//
//	token, err := jwt.Decode(tokenString)
//	if err != nil {
//		// errors.Is(err, jwt.ErrEmptyToken), jwt.ErrMalformedToken, ...
//	}
//
//	now := time.Now().Unix()
//	token.Claims.IsExpired(now)      // false when exp is absent
//	token.Claims.TimeRemaining(now)  // "5 minutes", "Expired", "No expiration"
//	token.Claims.Age(now)            // "2 hours", "Just issued", "Unknown"
//
// Claim evaluation takes the reference time as an explicit parameter rather
// than reading the system clock, which keeps results deterministic and
// testable.
//
// # Encoding and verification
//
//	token, err := jwt.Encode(
//		jwt.Header{"kid": "2024-01"},
//		jwt.Claims{"sub": "user123", "exp": time.Now().Add(time.Hour).Unix()},
//		secret,
//		jwt.HS256,
//	)
//
//	result := jwt.Verify(token, secret)
//	if !result.Valid {
//		log.Println(result.Err)
//	}
//
// Encode normalizes the header before signing: the alg value is always the
// requested algorithm, and typ defaults to "JWT" when the caller did not set
// one. The caller's header map is never mutated.
//
// Verify preserves the reference behavior of the original engine: the
// signature comparison is plain string equality (not constant-time) and the
// "none" algorithm verifies against an empty signature segment. Both are
// classic JWT pitfalls; callers that need a hardened path should use the
// Service layer, which compares signatures in constant time and accepts
// HS256 only.
//
// # Service
//
//	service, err := jwt.NewFromString("your-256-bit-secret")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	claims := jwt.StandardClaims{
//		Subject:   "user123",
//		ExpiresAt: time.Now().Add(time.Hour).Unix(),
//		IssuedAt:  time.Now().Unix(),
//	}
//	tokenString, err := service.Generate(claims)
//
//	var parsed jwt.StandardClaims
//	err = service.Parse(tokenString, &parsed)
//	switch {
//	case errors.Is(err, jwt.ErrExpiredToken):
//		// token past its exp claim
//	case errors.Is(err, jwt.ErrInvalidSignature):
//		// wrong secret or tampered token
//	}
//
// Custom claims embed StandardClaims:
//
//	type AccessClaims struct {
//		jwt.StandardClaims
//		Role string `json:"role"`
//	}
//
// # Error handling
//
// All failure modes are sentinel errors usable with errors.Is:
//   - ErrEmptyToken: empty or all-whitespace token string
//   - ErrMalformedToken: segment count is not three
//   - ErrInvalidClaims: header or payload is not a JSON object
//   - ErrUnsupportedAlgorithm: algorithm outside the signable set
//   - ErrMissingAlgorithm: header carries no alg value
//   - ErrMissingSecret: Verify called without token or secret
//   - ErrInvalidSignature: signature mismatch
//   - ErrExpiredToken, ErrNotYetValid: temporal claim failures (Service only)
//   - ErrUnexpectedSigningMethod: Service given a non-HS256 token
//   - ErrMissingSigningKey, ErrMissingClaims: Service construction misuse
//
// Nothing in this package panics on untrusted input, and the secret never
// appears in an error message.
//
// # Security notes
//
// Signing key requirements:
//   - Use at least 32 bytes (256 bits) for HMAC-SHA256
//   - Generate using a cryptographically secure random source
//   - Store securely (environment variables, key management service)
//
// Token expiration:
//   - Always set exp for security tokens
//   - Use short expiration times (15-60 minutes) for access tokens
//   - Consider nbf for tokens issued for future use
//
// The RS*, ES*, and PS* identifiers are recognized for description lookup
// (see Description) but are not implemented for signing or verification.
package jwt
