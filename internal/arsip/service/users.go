package service

import (
	"context"
	"errors"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/internal/arsip/store"
	"github.com/arsipkita/arsip/pkg/cryptox"
	"github.com/arsipkita/arsip/pkg/idx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrInvalidRole       = errors.New("invalid role")
	ErrSelfDeletion      = errors.New("cannot delete your own account")
	ErrUserReferenced    = errors.New("user is referenced by disposition history")
	ErrUserNotFound      = errors.New("user not found")
)

// UserService is the user directory. The admin-only restriction on Create
// and Delete is enforced at the router.
type UserService struct {
	Store store.Store
}

// List returns all users. Password hashes stay out of the result's JSON
// because handlers map to a response type without them.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// Create registers a new user with a hashed password.
func (s *UserService) Create(ctx context.Context, username, password, fullName string, role domain.Role) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if !domain.ValidRole(role) {
		return domain.User{}, ErrInvalidRole
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", "err", err)
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		FullName:     fullName,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateUsername
		}
		return domain.User{}, err
	}
	return user, nil
}

// Delete removes a user. Self-deletion is refused, and so is deleting a user
// who still appears in disposition history, which keeps that history
// readable forever.
func (s *UserService) Delete(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return ErrSelfDeletion
	}

	refs, err := s.Store.Dispositions().CountForUser(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrUserReferenced
	}

	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ErrUserNotFound
		case errors.Is(err, store.ErrReferenced):
			// Raced with a new disposition between the check and the delete.
			return ErrUserReferenced
		}
		return err
	}
	return nil
}
