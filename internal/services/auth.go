package services

import (
	"context"
	"fmt"
	"time"

	"poapregistry/internal/domain"
)

type authService struct {
	apiKeys   map[string]string
	addresses domain.AddressValidator
	hasher    domain.KeyHasher
	issuer    domain.TokenIssuer
	expiry    time.Duration
}

// NewAuthService creates an AuthService. apiKeys maps each canonical caller address to the
// bcrypt hash of its API key.
func NewAuthService(apiKeys map[string]string, addresses domain.AddressValidator, hasher domain.KeyHasher, issuer domain.TokenIssuer, expiry time.Duration) domain.AuthService {
	return &authService{
		apiKeys:   apiKeys,
		addresses: addresses,
		hasher:    hasher,
		issuer:    issuer,
		expiry:    expiry,
	}
}

func (s *authService) IssueToken(ctx context.Context, address, apiKey string) (string, error) {
	addr, err := s.addresses.Validate(address)
	if err != nil {
		return "", err
	}
	hash, ok := s.apiKeys[addr]
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(hash, apiKey); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(addr, s.expiry)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
