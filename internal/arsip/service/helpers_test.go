package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/internal/arsip/store"
	"github.com/arsipkita/arsip/internal/arsip/store/drivers/sqlite"
	"github.com/arsipkita/arsip/pkg/cryptox"
	"github.com/arsipkita/arsip/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "arsip-service-test")
	if err != nil {
		os.Exit(1)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, username string, role domain.Role) domain.User {
	t.Helper()

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		FullName:     "Test " + username,
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func seedLetter(t *testing.T, st store.Store, direction domain.Direction, number string) domain.Letter {
	t.Helper()

	letter := domain.Letter{
		ID:        idx.New().String(),
		Direction: direction,
		Number:    number,
		Subject:   "Undangan rapat koordinasi",
		Sender:    "Dinas Pendidikan",
		Recipient: "Kepala Kantor",
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Category:  "Undangan",
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}
	require.NoError(t, st.Letters().CreateLetter(context.Background(), letter))
	return letter
}
