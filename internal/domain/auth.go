package domain

import (
	"context"
	"time"
)

// TokenIssuer issues tokens (e.g. JWT) whose subject is a caller address.
type TokenIssuer interface {
	Issue(address string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the caller address it was issued to.
type TokenVerifier interface {
	Verify(token string) (address string, err error)
}

// KeyHasher hashes and verifies API keys. Implementations may use bcrypt, argon2, etc.
type KeyHasher interface {
	Hash(key string) (string, error)
	Compare(hash, key string) error
}

// AuthService exchanges an address and its API key for a bearer token.
type AuthService interface {
	IssueToken(ctx context.Context, address, apiKey string) (string, error)
}
