package v1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("pw1")
	require.NoError(t, err)
	assert.NoError(t, issuer.VerifyToken(token))
}

func TestTokenVerifyExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", -time.Minute)

	token, err := issuer.Issue("pw1")
	require.NoError(t, err)

	assert.ErrorIs(t, issuer.VerifyToken(token), ErrTokenInvalid)
}

func TestTokenVerifyTampered(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("pw1")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	assert.ErrorIs(t, issuer.VerifyToken(tampered), ErrTokenInvalid)
}

func TestTokenVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Issue("pw1")
	require.NoError(t, err)

	assert.ErrorIs(t, other.VerifyToken(token), ErrTokenInvalid)
}
