package auth

import (
	"crypto/sha256"
	"strings"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/golang-jwt/jwt/v5"
	"poapregistry/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAddress returns a valid bech32 address for prefix derived from seed with n payload bytes.
func testAddress(t *testing.T, prefix, seed string, n int) string {
	t.Helper()
	sum := sha256.Sum256([]byte(seed))
	data, err := bech32.ConvertBits(sum[:n], 8, 5, true)
	require.NoError(t, err)
	addr, err := bech32.Encode(prefix, data)
	require.NoError(t, err)
	return addr
}

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)

	token, err := issuer.Issue("poap1owner", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "poap1owner", claims.Subject)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTVerifier_Verify(t *testing.T) {
	secret := "test-secret"
	valid, err := NewJWTIssuer(secret).Issue("poap1owner", time.Hour)
	require.NoError(t, err)

	expiredIssuer := &jwtIssuer{secret: []byte(secret), now: func() time.Time { return time.Now().Add(-2 * time.Hour) }}
	expired, err := expiredIssuer.Issue("poap1owner", time.Hour)
	require.NoError(t, err)

	otherSecret, err := NewJWTIssuer("other-secret").Issue("poap1owner", time.Hour)
	require.NoError(t, err)

	noSubject, err := NewJWTIssuer(secret).Issue("", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{name: "valid", token: valid, want: "poap1owner"},
		{name: "expired", token: expired, wantErr: true},
		{name: "wrong secret", token: otherSecret, wantErr: true},
		{name: "no subject", token: noSubject, wantErr: true},
		{name: "garbage", token: "not.a.jwt", wantErr: true},
	}
	verifier := NewJWTVerifier(secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := verifier.Verify(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret-key")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, h.Compare(hash, "s3cret-key"))
	assert.Error(t, h.Compare(hash, "wrong"))

	long := strings.Repeat("k", 100)
	longHash, err := h.Hash(long)
	require.NoError(t, err)
	assert.Error(t, h.Compare(longHash, strings.Repeat("k", 99)+"x"), "bytes past 72 still count")
}

func TestBech32Validator_Validate(t *testing.T) {
	v := NewBech32Validator("poap")
	account := testAddress(t, "poap", "alice", 20)
	contract := testAddress(t, "poap", "contract", 32)

	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{name: "20 byte account", addr: account},
		{name: "32 byte account", addr: contract},
		{name: "empty", addr: "", wantErr: true},
		{name: "uppercase", addr: strings.ToUpper(account), wantErr: true},
		{name: "wrong prefix", addr: testAddress(t, "cosmos", "alice", 20), wantErr: true},
		{name: "bad checksum", addr: account[:len(account)-1] + flipLast(account), wantErr: true},
		{name: "wrong length", addr: testAddress(t, "poap", "alice", 16), wantErr: true},
		{name: "not bech32", addr: "alice", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Validate(tt.addr)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.addr, got)
		})
	}
}

func flipLast(s string) string {
	if s[len(s)-1] == 'q' {
		return "p"
	}
	return "q"
}
