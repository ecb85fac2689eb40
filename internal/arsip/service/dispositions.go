package service

import (
	"context"
	"errors"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/internal/arsip/store"
	"github.com/arsipkita/arsip/pkg/idx"
)

// ErrRecipientNotFound reports a disposition aimed at a user that does not
// exist.
var ErrRecipientNotFound = errors.New("disposition recipient not found")

// DispositionService routes letters between users. Routing is the only way a
// disposition comes into existence.
type DispositionService struct {
	Store store.Store
}

// Route records a forwarding of the letter from the authenticated actor to
// another user, then applies the disposition edge of the status lifecycle:
// a PENDING letter becomes PROCESSED, anything later is left alone. The
// actor id always comes from the verified session, never from the client.
func (s *DispositionService) Route(ctx context.Context, letterID, actorID, toUserID, notes string) (domain.Disposition, error) {
	// A clean not-found beats a raw constraint error for the letter.
	if _, err := s.Store.Letters().GetLetterByID(ctx, letterID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Disposition{}, ErrLetterNotFound
		}
		return domain.Disposition{}, err
	}

	disposition := domain.Disposition{
		ID:         idx.New().String(),
		LetterID:   letterID,
		FromUserID: actorID,
		ToUserID:   toUserID,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}

	if err := s.Store.Dispositions().CreateDisposition(ctx, disposition); err != nil {
		if errors.Is(err, store.ErrReferenced) {
			return domain.Disposition{}, ErrRecipientNotFound
		}
		return domain.Disposition{}, err
	}

	// Single-statement conditional update keeps the PENDING -> PROCESSED
	// edge atomic under concurrent routing.
	if err := s.Store.Letters().MarkProcessedIfPending(ctx, letterID); err != nil {
		return domain.Disposition{}, err
	}

	return disposition, nil
}

// ListForLetter returns the letter's forwarding history, oldest first, with
// both display names joined in.
func (s *DispositionService) ListForLetter(ctx context.Context, letterID string) ([]domain.DispositionWithNames, error) {
	return s.Store.Dispositions().ListForLetter(ctx, letterID)
}
