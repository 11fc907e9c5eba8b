package state

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can read out of its own bearer token. The
// signature belongs to the server; the claims are parsed unverified, for
// display and for prompting a re-login before an expired token bounces.
type TokenInfo struct {
	UserID    int
	ExpiresAt time.Time // zero when the token never expires
}

// InspectToken reads the subject and expiry claims from a bearer token
// without verifying its signature.
func InspectToken(token string) (TokenInfo, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("parse token: %w", err)
	}

	var info TokenInfo
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return TokenInfo{}, fmt.Errorf("token has no subject claim")
	}
	info.UserID, err = strconv.Atoi(sub)
	if err != nil {
		return TokenInfo{}, fmt.Errorf("token subject %q is not a user id: %w", sub, err)
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

// Expired reports whether the token carries an expiry that has passed.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}
