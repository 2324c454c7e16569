package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsTokenExpired reports whether the access token is unusable. An absent,
// malformed, or undecodable token counts as expired; it never returns an
// error for bad input.
func IsTokenExpired(token string) bool {
	return IsTokenExpiredAt(token, time.Now())
}

// IsTokenExpiredAt is IsTokenExpired evaluated against an explicit clock,
// for deterministic tests. A token whose embedded expiry is at or before now
// is expired; only a well-formed token with a strictly future expiry is not.
//
// The claim set is decoded without signature verification: the client only
// needs the embedded timestamp, the server remains the authority on token
// validity.
func IsTokenExpiredAt(token string, now time.Time) bool {
	if token == "" {
		return true
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		// No decodable expiry embedded: treat as expired.
		return true
	}

	return !exp.Time.After(now)
}
