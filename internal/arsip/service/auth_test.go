package service

import (
	"context"
	"testing"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesVerifiableSession(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	signer := &jwtx.SessionSigner{
		Secret: []byte("test-secret"),
		Issuer: "arsip-test",
		TTL:    time.Hour,
	}
	users := &UserService{Store: st}
	svc := &AuthService{Store: st, Signer: signer}

	created, err := users.Create(ctx, "admin", "admin123", "Administrator", domain.RoleAdmin)
	require.NoError(t, err)

	token, identity, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, created.ID, identity.UserID)
	require.Equal(t, "ADMIN", identity.Role)
	require.Equal(t, "Administrator", identity.FullName)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, identity, claims.Identity())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	signer := &jwtx.SessionSigner{
		Secret: []byte("test-secret"),
		Issuer: "arsip-test",
		TTL:    time.Hour,
	}
	users := &UserService{Store: st}
	svc := &AuthService{Store: st, Signer: signer}

	_, err := users.Create(ctx, "admin", "admin123", "Administrator", domain.RoleAdmin)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "admin", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown usernames fail the same way as wrong passwords.
	_, _, err = svc.Login(ctx, "nobody", "admin123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestBootstrapSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	svc := &BootstrapService{Store: st, AdminPassword: "rahasia", DemoUsers: true}
	users := &UserService{Store: st}

	require.NoError(t, svc.Seed(ctx))

	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// A populated table makes seeding a no-op.
	require.NoError(t, svc.Seed(ctx))

	all, err = users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	auth := &AuthService{Store: st, Signer: &jwtx.SessionSigner{
		Secret: []byte("test-secret"),
		Issuer: "arsip-test",
		TTL:    time.Hour,
	}}
	_, identity, err := auth.Login(ctx, "admin", "rahasia")
	require.NoError(t, err)
	require.Equal(t, "ADMIN", identity.Role)
}
