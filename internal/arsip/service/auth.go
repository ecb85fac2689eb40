package service

import (
	"context"
	"errors"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/store"
	"github.com/arsipkita/arsip/pkg/cryptox"
	"github.com/arsipkita/arsip/pkg/jwtx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password,
// so login failures don't reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Store  store.Store
	Signer *jwtx.SessionSigner
}

// Login verifies the credentials and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, jwtx.Identity, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", jwtx.Identity{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user", "username", username, "err", err)
		return "", jwtx.Identity{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", jwtx.Identity{}, ErrInvalidCredentials
	}

	identity := jwtx.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		FullName: user.FullName,
	}

	token, err := s.Signer.Sign(identity, time.Now())
	if err != nil {
		log.Error("failed to sign session token", "err", err)
		return "", jwtx.Identity{}, err
	}
	return token, identity, nil
}
