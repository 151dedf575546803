package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	signed, err := issuer.Issue("user-1")
	require.NoError(t, err)

	userID, err := issuer.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	signed, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	other := NewIssuer("other-secret", time.Hour)

	signed, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = other.Verify(signed)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalid)
}
