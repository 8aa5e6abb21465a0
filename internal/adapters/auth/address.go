package auth

import (
	"fmt"
	"strings"

	"poapregistry/internal/domain"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

type bech32Validator struct {
	prefix string
}

// NewBech32Validator returns an AddressValidator for bech32 account addresses with the given
// human-readable prefix. Accepted payloads are 20 or 32 bytes. Mixed-case input is rejected and
// the canonical form is lowercase.
func NewBech32Validator(prefix string) domain.AddressValidator {
	return &bech32Validator{prefix: strings.ToLower(prefix)}
}

func (v *bech32Validator) Validate(addr string) (string, error) {
	if addr == "" {
		return "", fmt.Errorf("%w: empty address", domain.ErrInvalidAddress)
	}
	if strings.ToLower(addr) != addr {
		return "", fmt.Errorf("%w: %q is not normalized", domain.ErrInvalidAddress, addr)
	}
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidAddress, err)
	}
	if hrp != v.prefix {
		return "", fmt.Errorf("%w: prefix %q, want %q", domain.ErrInvalidAddress, hrp, v.prefix)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidAddress, err)
	}
	if n := len(payload); n != 20 && n != 32 {
		return "", fmt.Errorf("%w: payload is %d bytes", domain.ErrInvalidAddress, n)
	}
	return addr, nil
}
