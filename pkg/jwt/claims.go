package jwt

import (
	"encoding/json"
	"fmt"
	"time"
)

// Claims is the token payload: an open bag of string-keyed values. The
// registered claims (iss, sub, aud, exp, nbf, iat, jti) have typed
// accessors; any other key is preserved opaquely.
type Claims map[string]any

// Issuer returns the iss claim, or "" when absent.
func (c Claims) Issuer() string { return stringValue(c, "iss") }

// Subject returns the sub claim, or "" when absent.
func (c Claims) Subject() string { return stringValue(c, "sub") }

// ID returns the jti claim, or "" when absent.
func (c Claims) ID() string { return stringValue(c, "jti") }

// Audience returns the aud claim normalized to a list. A single string
// becomes a one-element list; an absent or malformed claim yields nil.
func (c Claims) Audience() []string {
	switch v := c["aud"].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ExpiresAt returns the exp claim in Unix seconds; ok is false when absent.
func (c Claims) ExpiresAt() (int64, bool) { return c.numeric("exp") }

// NotBefore returns the nbf claim in Unix seconds; ok is false when absent.
func (c Claims) NotBefore() (int64, bool) { return c.numeric("nbf") }

// IssuedAt returns the iat claim in Unix seconds; ok is false when absent.
func (c Claims) IssuedAt() (int64, bool) { return c.numeric("iat") }

// IsExpired reports whether the exp claim is strictly before now.
// A payload without exp never expires.
func (c Claims) IsExpired(now int64) bool {
	exp, ok := c.ExpiresAt()
	if !ok {
		return false
	}
	return exp < now
}

// IsNotYetValid reports whether the nbf claim is strictly after now.
// A payload without nbf is always valid.
func (c Claims) IsNotYetValid(now int64) bool {
	nbf, ok := c.NotBefore()
	if !ok {
		return false
	}
	return nbf > now
}

// TimeRemaining renders the time until expiration relative to now:
// "No expiration" when exp is absent, "Expired" once exp has passed, and
// otherwise a magnitude-bucketed duration such as "30 seconds" or "2 days".
func (c Claims) TimeRemaining(now int64) string {
	exp, ok := c.ExpiresAt()
	if !ok {
		return "No expiration"
	}

	remaining := exp - now
	if remaining <= 0 {
		return "Expired"
	}
	return formatDuration(remaining)
}

// Age renders how long ago the token was issued relative to now: "Unknown"
// when iat is absent, "Just issued" when iat is now or in the future, and
// otherwise the same bucketing as TimeRemaining.
func (c Claims) Age(now int64) string {
	iat, ok := c.IssuedAt()
	if !ok {
		return "Unknown"
	}

	age := now - iat
	if age <= 0 {
		return "Just issued"
	}
	return formatDuration(age)
}

// formatDuration buckets a positive duration in seconds by magnitude.
func formatDuration(seconds int64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%d seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%d minutes", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d hours", seconds/3600)
	default:
		return fmt.Sprintf("%d days", seconds/86400)
	}
}

// FormatTimestamp renders ts (Unix seconds) for display, or "N/A" for a
// zero timestamp. The exact layout is presentation-level only.
func FormatTimestamp(ts int64) string {
	if ts == 0 {
		return "N/A"
	}
	return time.Unix(ts, 0).Format("Jan 2, 2006 15:04:05 MST")
}

// numeric reads a claim that should be an integer number of Unix seconds.
// JSON decoding yields float64; integer types and json.Number show up when
// claims were built in Go, so all are coerced.
func (c Claims) numeric(key string) (int64, bool) {
	switch v := c[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
