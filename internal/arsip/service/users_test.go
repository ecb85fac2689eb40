package service

import (
	"context"
	"testing"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateUserValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	_, err := svc.Create(ctx, "budi", "rahasia", "Budi Santoso", "SUPERVISOR")
	require.ErrorIs(t, err, ErrInvalidRole)

	created, err := svc.Create(ctx, "budi", "rahasia", "Budi Santoso", domain.RoleStaff)
	require.NoError(t, err)
	require.Equal(t, domain.RoleStaff, created.Role)
	require.NotEqual(t, "rahasia", created.PasswordHash)

	_, err = svc.Create(ctx, "budi", "lain", "Budi Kedua", domain.RoleStaff)
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestDeleteUserGuards(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	admin := seedUser(t, st, "admin", domain.RoleAdmin)
	staff := seedUser(t, st, "staff", domain.RoleStaff)
	spare := seedUser(t, st, "spare", domain.RoleStaff)

	// Nobody deletes their own account.
	require.ErrorIs(t, svc.Delete(ctx, admin.ID, admin.ID), ErrSelfDeletion)

	// A user on either end of a disposition cannot be removed.
	letter := seedLetter(t, st, domain.DirectionIncoming, "001/SM/2026")
	dispositions := &DispositionService{Store: st}
	_, err := dispositions.Route(ctx, letter.ID, admin.ID, staff.ID, "")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, staff.ID, admin.ID), ErrUserReferenced)
	require.ErrorIs(t, svc.Delete(ctx, admin.ID, staff.ID), ErrUserReferenced)

	// An unreferenced user goes away cleanly.
	require.NoError(t, svc.Delete(ctx, spare.ID, admin.ID))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.ErrorIs(t, svc.Delete(ctx, spare.ID, admin.ID), ErrUserNotFound)
}
