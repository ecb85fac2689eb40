package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/store"
	_ "modernc.org/sqlite"
)

// dbtx is the subset of *sql.DB and *sql.Tx the repositories need, so the
// same repo types serve both transactional and plain access.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One connection only. sqlite serializes writers anyway, and a pool of
	// one keeps session pragmas effective and makes ":memory:" databases
	// behave (every pooled connection would otherwise get its own).
	db.SetMaxOpenConns(1)

	// Enforce FKs; sqlite leaves them off by default.
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback is safe to call after commit; it covers panics and early
	// error returns.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users               { return &usersRepo{db: s.db} }
func (s *Store) Letters() store.Letters           { return &lettersRepo{db: s.db} }
func (s *Store) Dispositions() store.Dispositions { return &dispositionsRepo{db: s.db} }

// mapErr translates driver-level failures into the store's sentinel errors.
// modernc.org/sqlite surfaces constraint violations as plain error messages,
// so matching on the constraint name text is the only handle we have.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return store.ErrReferenced
	}
	return err
}

// Timestamps are stored as RFC3339 text so year extraction and ordering work
// with plain string operations.
const timeLayout = time.RFC3339Nano

// Letter dates carry no time component.
const dateLayout = time.DateOnly

func fmtTime(t time.Time) string { return t.UTC().Format(timeLayout) }
func fmtDate(t time.Time) string { return t.Format(dateLayout) }

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
