package base64url

import (
	"encoding/base64"
	"fmt"
)

// Encode returns the unpadded URL-safe base64 encoding of src.
func Encode(src []byte) string {
	return base64.RawURLEncoding.EncodeToString(src)
}

// EncodeString encodes the UTF-8 byte sequence of s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// Decode reverses Encode. It returns ErrInvalidEncoding (wrapped with the
// underlying cause) when s contains characters outside the URL-safe alphabet
// or has corrupt length/padding.
func Decode(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

// DecodeString decodes s and interprets the result as a UTF-8 string.
func DecodeString(s string) (string, error) {
	b, err := Decode(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
