package base64url

import "errors"

// ErrInvalidEncoding indicates input outside the unpadded URL-safe base64
// alphabet or with a corrupt length.
var ErrInvalidEncoding = errors.New("invalid base64url encoding")
