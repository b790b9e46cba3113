package domain

import "time"

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user. Session
// establishment lives in a separate service; the issuer exists here for
// local development and tests.
type TokenIssuer interface {
	Issue(userID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}
