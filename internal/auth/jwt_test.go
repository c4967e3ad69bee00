package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuer(t *testing.T, secret string) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(secret, time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestIssueAndVerify(t *testing.T) {
	issuer := newIssuer(t, "secret")

	alice, err := issuer.Issue(1, "alice")
	require.NoError(t, err)
	bob, err := issuer.Issue(2, "bob")
	require.NoError(t, err)

	id, err := issuer.Verify(alice)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	id, err = issuer.Verify(bob)
	require.NoError(t, err)
	assert.Equal(t, uint(2), id)
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := newIssuer(t, "secret")
	issuedAt := time.Now().Add(-2 * time.Hour)

	token, err := issuer.WithClock(func() time.Time { return issuedAt }).Issue(1, "alice")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Still valid from the point of view of a clock inside the window.
	id, err := issuer.WithClock(func() time.Time { return issuedAt.Add(time.Minute) }).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
}

func TestVerifyRejectsTampering(t *testing.T) {
	issuer := newIssuer(t, "secret")
	token, err := issuer.Issue(1, "alice")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Re-sign the same claims with another key.
	forged, err := newIssuer(t, "other-secret").Issue(1, "alice")
	require.NoError(t, err)

	// Swap in a payload claiming to be user 2.
	other, err := issuer.Issue(2, "bob")
	require.NoError(t, err)
	swapped := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]

	for name, bad := range map[string]string{
		"empty":        "",
		"garbage":      "not.a.token",
		"foreign key":  forged,
		"payload swap": swapped,
		"no signature": parts[0] + "." + parts[1] + ".",
		"truncated":    token[:len(token)-4],
	} {
		_, err := issuer.Verify(bad)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	issuer := newIssuer(t, "secret")
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Verify(none)
	assert.ErrorIs(t, err, ErrInvalidToken)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = issuer.Verify(hs512)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRequiresExpiry(t *testing.T) {
	issuer := newIssuer(t, "secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
