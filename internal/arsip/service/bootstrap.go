package service

import (
	"context"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/internal/arsip/store"
	"github.com/arsipkita/arsip/pkg/cryptox"
	"github.com/arsipkita/arsip/pkg/idx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

// BootstrapService seeds the first accounts on an empty database so the
// office can log in without manual SQL.
type BootstrapService struct {
	Store store.Store

	// AdminPassword is the password for the seeded admin account.
	AdminPassword string
	// DemoUsers also seeds a staff and a leadership account with well-known
	// passwords. Only sensible outside production.
	DemoUsers bool
}

// Seed creates the initial users when the user table is empty. Idempotent:
// a populated table makes it a no-op.
func (s *BootstrapService) Seed(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	type seedUser struct {
		username string
		password string
		fullName string
		role     domain.Role
	}

	seeds := []seedUser{
		{"admin", s.AdminPassword, "Administrator", domain.RoleAdmin},
	}
	if s.DemoUsers {
		seeds = append(seeds,
			seedUser{"staff", "staff123", "Staff Arsip", domain.RoleStaff},
			seedUser{"pimpinan", "pimpinan123", "Kepala Instansi", domain.RoleLeadership},
		)
	}

	for _, seed := range seeds {
		hash, err := cryptox.HashPassword(seed.password)
		if err != nil {
			return err
		}
		err = s.Store.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Username:     seed.username,
			FullName:     seed.fullName,
			PasswordHash: hash,
			Role:         seed.role,
		})
		if err != nil {
			return err
		}
		log.Info("seeded user", "username", seed.username, "role", seed.role)
	}
	return nil
}
