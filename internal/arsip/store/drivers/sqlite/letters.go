package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/internal/arsip/store"
)

type lettersRepo struct {
	db dbtx
}

const letterColumns = `id, direction, letter_number, subject, sender, recipient,
	letter_date, category, status, file_path, created_at`

func scanLetter(row interface{ Scan(...any) error }) (domain.Letter, error) {
	var l domain.Letter
	var letterDate, createdAt string
	var filePath sql.NullString
	err := row.Scan(&l.ID, &l.Direction, &l.Number, &l.Subject, &l.Sender, &l.Recipient,
		&letterDate, &l.Category, &l.Status, &filePath, &createdAt)
	if err != nil {
		return domain.Letter{}, mapErr(err)
	}
	l.Date = parseDate(letterDate)
	l.CreatedAt = parseTime(createdAt)
	if filePath.Valid {
		l.FilePath = filePath.String
	}
	return l, nil
}

func (r *lettersRepo) CreateLetter(ctx context.Context, l domain.Letter) error {
	var filePath sql.NullString
	if l.FilePath != "" {
		filePath = sql.NullString{String: l.FilePath, Valid: true}
	}
	createdAt := l.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO letters (id, direction, letter_number, subject, sender, recipient,
		 letter_date, category, status, file_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, string(l.Direction), l.Number, l.Subject, l.Sender, l.Recipient,
		fmtDate(l.Date), l.Category, string(l.Status), filePath, fmtTime(createdAt))
	return mapErr(err)
}

func (r *lettersRepo) GetLetterByID(ctx context.Context, id string) (domain.Letter, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+letterColumns+` FROM letters WHERE id = ?`, id)
	return scanLetter(row)
}

func (r *lettersRepo) ListLetters(ctx context.Context, f store.LetterFilter) ([]domain.Letter, error) {
	query := `SELECT ` + letterColumns + ` FROM letters WHERE 1=1`
	var args []any

	if f.Direction != "" {
		query += ` AND direction = ?`
		args = append(args, string(f.Direction))
	}
	if f.Search != "" {
		query += ` AND (subject LIKE ? OR letter_number LIKE ? OR sender LIKE ? OR recipient LIKE ?)`
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	query += ` ORDER BY created_at DESC`

	return r.queryLetters(ctx, query, args...)
}

func (r *lettersRepo) ListLettersByDateRange(ctx context.Context, start, end time.Time) ([]domain.Letter, error) {
	// letter_date is stored as YYYY-MM-DD, so lexical comparison is date
	// comparison.
	return r.queryLetters(ctx,
		`SELECT `+letterColumns+` FROM letters
		 WHERE letter_date >= ? AND letter_date <= ?
		 ORDER BY letter_date ASC, created_at ASC`,
		fmtDate(start), fmtDate(end))
}

func (r *lettersRepo) queryLetters(ctx context.Context, query string, args ...any) ([]domain.Letter, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var letters []domain.Letter
	for rows.Next() {
		l, err := scanLetter(rows)
		if err != nil {
			return nil, err
		}
		letters = append(letters, l)
	}
	return letters, rows.Err()
}

func (r *lettersRepo) CountByDirectionInYear(ctx context.Context, d domain.Direction, year int) (int64, error) {
	// created_at is RFC3339 text; the first four characters are the year.
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM letters WHERE direction = ? AND substr(created_at, 1, 4) = ?`,
		string(d), strconv.Itoa(year)).Scan(&count)
	return count, err
}

func (r *lettersRepo) CountByDirection(ctx context.Context, d domain.Direction) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM letters WHERE direction = ?`, string(d)).Scan(&count)
	return count, err
}

func (r *lettersRepo) CountByStatus(ctx context.Context, s domain.Status) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM letters WHERE status = ?`, string(s)).Scan(&count)
	return count, err
}

func (r *lettersRepo) UpdateLetterStatus(ctx context.Context, id string, s domain.Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE letters SET status = ? WHERE id = ?`, string(s), id)
	if err != nil {
		return mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *lettersRepo) MarkProcessedIfPending(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE letters SET status = ? WHERE id = ? AND status = ?`,
		string(domain.StatusProcessed), id, string(domain.StatusPending))
	return mapErr(err)
}

func (r *lettersRepo) DeleteLetter(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM letters WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
