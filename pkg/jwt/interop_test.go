package jwt_test

import (
	"testing"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge/jwtkit/pkg/jwt"
)

// Interop tests cross-check the engine against golang-jwt/jwt/v5 in both
// directions, so the compact serialization and HMAC signatures are
// interchangeable with the ecosystem's de facto implementation.

const interopSecret = "interop-test-secret-32-bytes-long!!"

func TestInterop_EngineTokenParsedByGolangJWT(t *testing.T) {
	t.Parallel()

	methods := map[string]*jwtgo.SigningMethodHMAC{
		jwt.HS256: jwtgo.SigningMethodHS256,
		jwt.HS384: jwtgo.SigningMethodHS384,
		jwt.HS512: jwtgo.SigningMethodHS512,
	}

	for alg, method := range methods {
		t.Run(alg, func(t *testing.T) {
			token, err := jwt.Encode(nil, jwt.Claims{
				"sub": "user123",
				"exp": time.Now().Add(time.Hour).Unix(),
			}, interopSecret, alg)
			require.NoError(t, err)

			parsed, err := jwtgo.Parse(token,
				func(*jwtgo.Token) (any, error) { return []byte(interopSecret), nil },
				jwtgo.WithValidMethods([]string{method.Alg()}),
			)
			require.NoError(t, err)
			require.True(t, parsed.Valid)

			claims, ok := parsed.Claims.(jwtgo.MapClaims)
			require.True(t, ok)
			assert.Equal(t, "user123", claims["sub"])
		})
	}
}

func TestInterop_GolangJWTTokenVerifiedByEngine(t *testing.T) {
	t.Parallel()

	token, err := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.MapClaims{
		"sub": "user456",
		"iss": "golang-jwt",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(interopSecret))
	require.NoError(t, err)

	result := jwt.Verify(token, interopSecret)
	assert.True(t, result.Valid)

	decoded, err := jwt.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user456", decoded.Claims.Subject())
	assert.Equal(t, "golang-jwt", decoded.Claims.Issuer())
	assert.Equal(t, jwt.HS256, decoded.Header.Algorithm())
}

func TestInterop_ServiceParsesGolangJWTToken(t *testing.T) {
	t.Parallel()

	token, err := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.MapClaims{
		"sub": "user789",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(interopSecret))
	require.NoError(t, err)

	service, err := jwt.NewFromString(interopSecret)
	require.NoError(t, err)

	var claims jwt.StandardClaims
	require.NoError(t, service.Parse(token, &claims))
	assert.Equal(t, "user789", claims.Subject)
}
