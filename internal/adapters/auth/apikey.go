package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"poapregistry/internal/domain"
)

// DefaultCost is the bcrypt cost for new API key hashes.
const DefaultCost = bcrypt.DefaultCost

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a KeyHasher that bcrypts the hex SHA256 of the key, so keys longer
// than bcrypt's 72 byte limit still compare on every byte.
func NewBcryptHasher(cost int) domain.KeyHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(key), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash api key: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, key string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(key))
}

func prehash(key string) []byte {
	sum := sha256.Sum256([]byte(key))
	return []byte(hex.EncodeToString(sum[:]))
}
