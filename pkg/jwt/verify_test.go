package jwt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge/jwtkit/pkg/base64url"
	"github.com/tokenforge/jwtkit/pkg/jwt"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	secret := "verify-test-secret"

	t.Run("valid token for every supported algorithm", func(t *testing.T) {
		for _, alg := range jwt.SupportedAlgorithms() {
			t.Run(alg, func(t *testing.T) {
				token, err := jwt.Encode(nil, jwt.Claims{"sub": "x"}, secret, alg)
				require.NoError(t, err)

				result := jwt.Verify(token, secret)
				assert.True(t, result.Valid)
				assert.NoError(t, result.Err)
			})
		}
	})

	t.Run("known jwt.io token", func(t *testing.T) {
		result := jwt.Verify(jwtioToken, "your-256-bit-secret")
		assert.True(t, result.Valid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.Encode(nil, jwt.Claims{"sub": "x"}, secret, jwt.HS256)
		require.NoError(t, err)

		result := jwt.Verify(token, "wrong-secret")
		assert.False(t, result.Valid)
		assert.ErrorIs(t, result.Err, jwt.ErrInvalidSignature)
	})

	t.Run("empty token", func(t *testing.T) {
		result := jwt.Verify("", secret)
		assert.False(t, result.Valid)
		assert.ErrorIs(t, result.Err, jwt.ErrMissingSecret)
	})

	t.Run("empty secret", func(t *testing.T) {
		result := jwt.Verify(jwtioToken, "")
		assert.False(t, result.Valid)
		assert.ErrorIs(t, result.Err, jwt.ErrMissingSecret)
		assert.Equal(t, "token and secret are required", result.Err.Error())
	})

	t.Run("wrong segment count", func(t *testing.T) {
		result := jwt.Verify("only.two", secret)
		assert.False(t, result.Valid)
		assert.ErrorIs(t, result.Err, jwt.ErrMalformedToken)
		assert.Equal(t, "invalid token format", result.Err.Error())
	})

	t.Run("header without alg", func(t *testing.T) {
		header := base64url.EncodeString(`{"typ":"JWT"}`)
		payload := base64url.EncodeString(`{}`)
		result := jwt.Verify(header+"."+payload+".sig", secret)
		assert.False(t, result.Valid)
		assert.ErrorIs(t, result.Err, jwt.ErrMissingAlgorithm)
		assert.Equal(t, "no algorithm specified in header", result.Err.Error())
	})

	t.Run("unsupported algorithm surfaces as result error", func(t *testing.T) {
		header := base64url.EncodeString(`{"alg":"RS256"}`)
		payload := base64url.EncodeString(`{}`)
		result := jwt.Verify(header+"."+payload+".sig", secret)
		assert.False(t, result.Valid)
		assert.ErrorIs(t, result.Err, jwt.ErrUnsupportedAlgorithm)
	})

	t.Run("payload need not decode", func(t *testing.T) {
		// Only the header's alg must be extractable; a garbage payload
		// still participates in the signature check.
		header := base64url.EncodeString(`{"alg":"HS256"}`)
		payload := "!!not-base64!!"
		signingInput := header + "." + payload

		signature, err := jwt.Sign([]byte(signingInput), secret, jwt.HS256)
		require.NoError(t, err)

		result := jwt.Verify(signingInput+"."+signature, secret)
		assert.True(t, result.Valid)
	})

	t.Run("error is set iff invalid", func(t *testing.T) {
		token, err := jwt.Encode(nil, jwt.Claims{"sub": "x"}, secret, jwt.HS256)
		require.NoError(t, err)

		valid := jwt.Verify(token, secret)
		assert.True(t, valid.Valid)
		assert.Nil(t, valid.Err)

		invalid := jwt.Verify(token, "nope")
		assert.False(t, invalid.Valid)
		assert.NotNil(t, invalid.Err)
	})
}

// TestVerify_NoneAlgorithmAccepted documents a known pitfall kept from the
// reference behavior: a token whose header claims alg "none" verifies
// against an empty signature segment regardless of the secret. Callers that
// must not accept unsigned tokens should use Service.Parse.
func TestVerify_NoneAlgorithmAccepted(t *testing.T) {
	t.Parallel()

	header := base64url.EncodeString(`{"alg":"none","typ":"JWT"}`)
	payload := base64url.EncodeString(`{"sub":"attacker"}`)
	unsigned := header + "." + payload + "."

	result := jwt.Verify(unsigned, "any-secret-at-all")
	assert.True(t, result.Valid)
}

// TestVerify_ComparisonIsPlainEquality documents that the signature check is
// plain string comparison of encoded segments, not a constant-time digest
// comparison. The observable consequence tested here: a signature that
// differs from the canonical encoding in any byte is rejected outright.
func TestVerify_ComparisonIsPlainEquality(t *testing.T) {
	t.Parallel()

	secret := "verify-test-secret"
	token, err := jwt.Encode(nil, jwt.Claims{"sub": "x"}, secret, jwt.HS256)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	flipped := parts[0] + "." + parts[1] + "." + flipLastChar(parts[2])

	result := jwt.Verify(flipped, secret)
	assert.False(t, result.Valid)
	assert.ErrorIs(t, result.Err, jwt.ErrInvalidSignature)
}

func flipLastChar(s string) string {
	last := s[len(s)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	return s[:len(s)-1] + string(replacement)
}
