package store

import (
	"context"
	"errors"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrReferenced    = errors.New("store: row is referenced by other rows")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Letters() Letters
	Dispositions() Dispositions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: commit when fn returns nil,
	// rollback otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login (exact match).
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// ListUsers returns all users ordered by creation (oldest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists on a username collision.
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes a user row. Dispositions referencing the user make
	// this fail with ErrReferenced.
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users (first-boot seeding check).
	IsEmpty(ctx context.Context) (bool, error)
}

// LetterFilter narrows ListLetters. Zero values mean "no restriction".
type LetterFilter struct {
	// Direction restricts to INCOMING or OUTGOING when non-empty.
	Direction domain.Direction
	// Search matches case-insensitively as a substring against subject,
	// number, sender and recipient.
	Search string
}

type Letters interface {
	// CreateLetter inserts a new letter. Returns ErrAlreadyExists when the
	// letter number collides with an existing row.
	CreateLetter(ctx context.Context, l domain.Letter) error

	// GetLetterByID returns a letter by id.
	GetLetterByID(ctx context.Context, id string) (domain.Letter, error)

	// ListLetters returns letters matching the filter, newest archived first.
	ListLetters(ctx context.Context, f LetterFilter) ([]domain.Letter, error)

	// ListLettersByDateRange returns letters whose stated date falls in the
	// inclusive [start, end] range, newest archived first. Used by reports.
	ListLettersByDateRange(ctx context.Context, start, end time.Time) ([]domain.Letter, error)

	// CountByDirectionInYear counts letters of a direction archived in the
	// given calendar year. Feeds the advisory number suggestion.
	CountByDirectionInYear(ctx context.Context, d domain.Direction, year int) (int64, error)

	// CountByDirection counts all letters of a direction.
	CountByDirection(ctx context.Context, d domain.Direction) (int64, error)

	// CountByStatus counts all letters with the given status.
	CountByStatus(ctx context.Context, s domain.Status) (int64, error)

	// UpdateLetterStatus overwrites the status of a letter.
	UpdateLetterStatus(ctx context.Context, id string, s domain.Status) error

	// MarkProcessedIfPending transitions PENDING -> PROCESSED atomically in a
	// single statement and is a no-op for any other current status.
	MarkProcessedIfPending(ctx context.Context, id string) error

	// DeleteLetter removes a letter row. Dispositions must be removed first
	// (or in the same transaction).
	DeleteLetter(ctx context.Context, id string) error
}

type Dispositions interface {
	// CreateDisposition inserts a new disposition. A missing letter or user
	// surfaces as ErrReferenced via the foreign key constraints.
	CreateDisposition(ctx context.Context, d domain.Disposition) error

	// ListForLetter returns the disposition history of a letter, oldest
	// first, each row joined with both users' display names.
	ListForLetter(ctx context.Context, letterID string) ([]domain.DispositionWithNames, error)

	// DeleteForLetter removes all dispositions of a letter (cascade path of
	// letter deletion).
	DeleteForLetter(ctx context.Context, letterID string) error

	// CountForUser counts dispositions referencing the user on either side.
	CountForUser(ctx context.Context, userID string) (int64, error)
}
