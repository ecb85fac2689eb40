package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testSigner() *SessionSigner {
	return &SessionSigner{
		Secret: []byte("test-secret"),
		Issuer: "arsip-test",
		TTL:    time.Hour,
	}
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	s := testSigner()
	id := Identity{UserID: "u1", Username: "admin", Role: "ADMIN", FullName: "Administrator"}

	raw, err := s.Sign(id, time.Now())
	require.NoError(t, err)

	claims, err := s.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, id, claims.Identity())
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	s := testSigner()
	raw, err := s.Sign(Identity{UserID: "u1"}, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = s.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := testSigner().Sign(Identity{UserID: "u1"}, time.Now())
	require.NoError(t, err)

	other := &SessionSigner{Secret: []byte("other-secret"), Issuer: "arsip-test"}
	_, err = other.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	issued := &SessionSigner{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	raw, err := issued.Sign(Identity{UserID: "u1"}, time.Now())
	require.NoError(t, err)

	_, err = testSigner().Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := testSigner().Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
