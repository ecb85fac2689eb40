package sqlite

import (
	"context"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/domain"
)

type dispositionsRepo struct {
	db dbtx
}

func (r *dispositionsRepo) CreateDisposition(ctx context.Context, d domain.Disposition) error {
	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dispositions (id, letter_id, from_user_id, to_user_id, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.LetterID, d.FromUserID, d.ToUserID, d.Notes, fmtTime(createdAt))
	return mapErr(err)
}

func (r *dispositionsRepo) ListForLetter(ctx context.Context, letterID string) ([]domain.DispositionWithNames, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.id, d.letter_id, d.from_user_id, d.to_user_id, d.notes, d.created_at,
		        uf.full_name, ut.full_name
		 FROM dispositions d
		 JOIN users uf ON d.from_user_id = uf.id
		 JOIN users ut ON d.to_user_id = ut.id
		 WHERE d.letter_id = ?
		 ORDER BY d.created_at ASC`, letterID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.DispositionWithNames
	for rows.Next() {
		var d domain.DispositionWithNames
		var createdAt string
		if err := rows.Scan(&d.ID, &d.LetterID, &d.FromUserID, &d.ToUserID,
			&d.Notes, &createdAt, &d.FromName, &d.ToName); err != nil {
			return nil, err
		}
		d.CreatedAt = parseTime(createdAt)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *dispositionsRepo) DeleteForLetter(ctx context.Context, letterID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM dispositions WHERE letter_id = ?`, letterID)
	return mapErr(err)
}

func (r *dispositionsRepo) CountForUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM dispositions WHERE from_user_id = ? OR to_user_id = ?`,
		userID, userID).Scan(&count)
	return count, err
}
