// Package base64url implements the unpadded, URL-safe base64 alphabet used
// by the JWT compact serialization (RFC 7515 section 2).
//
// The alphabet replaces `+` with `-` and `/` with `_`, and strips the `=`
// padding, so encoded segments are safe to embed in URLs, cookies, and HTTP
// headers without escaping.
//
// Basic usage:
//
//	import "github.com/tokenforge/jwtkit/pkg/base64url"
//
//	segment := base64url.Encode([]byte(`{"alg":"HS256"}`))
//
//	raw, err := base64url.Decode(segment)
//	if err != nil {
//		// errors.Is(err, base64url.ErrInvalidEncoding)
//	}
//
// EncodeString converts the string to its UTF-8 byte sequence before
// encoding, so non-ASCII values survive a round-trip unchanged.
package base64url
