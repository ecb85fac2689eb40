package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/internal/arsip/files"
	"github.com/arsipkita/arsip/internal/arsip/store"
	"github.com/arsipkita/arsip/pkg/idx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

var (
	ErrDuplicateNumber = errors.New("letter number already in use")
	ErrLetterNotFound  = errors.New("letter not found")
)

// LetterService owns letter creation, lookup, status transitions, sequential
// numbering and deletion with cascade.
type LetterService struct {
	Store store.Store
	Files files.Store
}

// CreateLetterInput carries the fields of a new letter. File is optional; a
// nil reader means no attachment.
type CreateLetterInput struct {
	Direction domain.Direction
	Number    string
	Subject   string
	Sender    string
	Recipient string
	Date      time.Time
	Category  string

	Filename string
	File     io.Reader
}

// Create archives a new letter with status PENDING. A colliding letter
// number fails with ErrDuplicateNumber; the collision is detected by the
// store's uniqueness constraint, not pre-checked.
func (s *LetterService) Create(ctx context.Context, in CreateLetterInput) (domain.Letter, error) {
	log := slogx.FromContext(ctx)

	letter := domain.Letter{
		ID:        idx.New().String(),
		Direction: in.Direction,
		Number:    in.Number,
		Subject:   in.Subject,
		Sender:    in.Sender,
		Recipient: in.Recipient,
		Date:      in.Date,
		Category:  in.Category,
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}

	if in.File != nil {
		ref, err := s.Files.Save(ctx, in.Filename, in.File)
		if err != nil {
			log.Error("failed to store attachment", "err", err)
			return domain.Letter{}, fmt.Errorf("store attachment: %w", err)
		}
		letter.FilePath = ref
	}

	if err := s.Store.Letters().CreateLetter(ctx, letter); err != nil {
		// Don't leave the attachment orphaned when the insert is rejected.
		if letter.FilePath != "" {
			if rmErr := s.Files.Remove(ctx, letter.FilePath); rmErr != nil {
				log.Warn("failed to remove attachment after rejected insert", "err", rmErr)
			}
		}
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Letter{}, ErrDuplicateNumber
		}
		return domain.Letter{}, err
	}

	return letter, nil
}

// SuggestNextNumber computes an advisory candidate number of the form
// {sequence}/{code}/{year}. It does not reserve the number: two concurrent
// callers can receive the same candidate and the loser's Create will fail
// with ErrDuplicateNumber. Counting uses the archival year, not the letter's
// own stated date.
func (s *LetterService) SuggestNextNumber(ctx context.Context, d domain.Direction) (string, error) {
	year := time.Now().Year()
	count, err := s.Store.Letters().CountByDirectionInYear(ctx, d, year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%03d/%s/%d", count+1, d.Code(), year), nil
}

func (s *LetterService) Get(ctx context.Context, id string) (domain.Letter, error) {
	letter, err := s.Store.Letters().GetLetterByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Letter{}, ErrLetterNotFound
	}
	return letter, err
}

func (s *LetterService) List(ctx context.Context, f store.LetterFilter) ([]domain.Letter, error) {
	return s.Store.Letters().ListLetters(ctx, f)
}

// AdvanceStatus moves a letter to the target status, enforcing the
// forward-only lifecycle. Requesting the current status again is a no-op.
func (s *LetterService) AdvanceStatus(ctx context.Context, id string, target domain.Status) error {
	letter, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Transition(letter.Status, target); err != nil {
		return err
	}
	if letter.Status == target {
		return nil
	}
	return s.Store.Letters().UpdateLetterStatus(ctx, id, target)
}

// Delete removes a letter, its dispositions and its stored attachment. The
// row deletions run in one transaction; the attachment is removed after
// commit and best-effort, so a missing file never fails the delete.
func (s *LetterService) Delete(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	letter, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Dispositions().DeleteForLetter(ctx, id); err != nil {
			return err
		}
		return tx.Letters().DeleteLetter(ctx, id)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLetterNotFound
		}
		return err
	}

	if letter.FilePath != "" {
		if err := s.Files.Remove(ctx, letter.FilePath); err != nil {
			log.Warn("failed to remove attachment of deleted letter",
				"letter_id", id, "ref", letter.FilePath, "err", err)
		}
	}
	return nil
}
