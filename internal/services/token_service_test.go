package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService([]byte("super-secret"), time.Hour)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestTokenService_NonExpiring(t *testing.T) {
	// TTL 0 keeps the legacy behavior: tokens stay valid until the
	// signing key rotates.
	svc := NewTokenService([]byte("super-secret"), 0)

	token, err := svc.Issue(7)
	require.NoError(t, err)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(7), userID)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService([]byte("super-secret"), -time.Second)

	token, err := svc.Issue(7)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("right-secret"), time.Hour)
	verifier := NewTokenService([]byte("wrong-secret"), time.Hour)

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := NewTokenService([]byte("super-secret"), time.Hour)

	token, err := svc.Issue(7)
	require.NoError(t, err)

	// Flip a byte in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_SubjectIsBoundToIssuedUser(t *testing.T) {
	svc := NewTokenService([]byte("super-secret"), time.Hour)

	tokenA, err := svc.Issue(1)
	require.NoError(t, err)
	tokenB, err := svc.Issue(2)
	require.NoError(t, err)

	userA, err := svc.Verify(tokenA)
	require.NoError(t, err)
	userB, err := svc.Verify(tokenB)
	require.NoError(t, err)

	require.Equal(t, uint64(1), userA)
	require.Equal(t, uint64(2), userB)
	require.NotEqual(t, userA, userB)
}

func TestTokenService_GarbageToken(t *testing.T) {
	svc := NewTokenService([]byte("super-secret"), time.Hour)

	_, err := svc.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
