package service

import (
	"context"
	"testing"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/stretchr/testify/require"
)

func TestRouteMarksPendingLetterProcessed(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	letters := &LetterService{Store: st}
	svc := &DispositionService{Store: st}

	admin := seedUser(t, st, "admin", domain.RoleAdmin)
	staff := seedUser(t, st, "staff", domain.RoleStaff)
	leadership := seedUser(t, st, "pimpinan", domain.RoleLeadership)

	letter := seedLetter(t, st, domain.DirectionIncoming, "001/SM/2026")

	first, err := svc.Route(ctx, letter.ID, admin.ID, staff.ID, "mohon ditindaklanjuti")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	got, err := letters.Get(ctx, letter.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusProcessed, got.Status)

	// A completed letter keeps its status on later dispositions.
	require.NoError(t, letters.AdvanceStatus(ctx, letter.ID, domain.StatusCompleted))

	_, err = svc.Route(ctx, letter.ID, staff.ID, leadership.ID, "untuk arsip")
	require.NoError(t, err)

	got, err = letters.Get(ctx, letter.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, got.Status)
}

func TestRouteHistoryResolvesNames(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DispositionService{Store: st}

	admin := seedUser(t, st, "admin", domain.RoleAdmin)
	staff := seedUser(t, st, "staff", domain.RoleStaff)
	letter := seedLetter(t, st, domain.DirectionIncoming, "001/SM/2026")

	_, err := svc.Route(ctx, letter.ID, admin.ID, staff.ID, "diperiksa dulu")
	require.NoError(t, err)
	_, err = svc.Route(ctx, letter.ID, staff.ID, admin.ID, "sudah diperiksa")
	require.NoError(t, err)

	history, err := svc.ListForLetter(ctx, letter.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Chronological order, display names resolved on both ends.
	require.Equal(t, "diperiksa dulu", history[0].Notes)
	require.Equal(t, admin.FullName, history[0].FromName)
	require.Equal(t, staff.FullName, history[0].ToName)
	require.Equal(t, staff.FullName, history[1].FromName)
	require.Equal(t, admin.FullName, history[1].ToName)
}

func TestRouteValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DispositionService{Store: st}

	admin := seedUser(t, st, "admin", domain.RoleAdmin)
	letter := seedLetter(t, st, domain.DirectionIncoming, "001/SM/2026")

	_, err := svc.Route(ctx, "no-such-letter", admin.ID, admin.ID, "")
	require.ErrorIs(t, err, ErrLetterNotFound)

	_, err = svc.Route(ctx, letter.ID, admin.ID, "no-such-user", "")
	require.ErrorIs(t, err, ErrRecipientNotFound)
}
