package domain

import "time"

// Disposition records forwarding a letter to another user with instructions.
// Dispositions are append-only; they are never updated and only removed as a
// cascade of letter deletion.
type Disposition struct {
	ID         string
	LetterID   string
	FromUserID string // always the authenticated actor, never client-supplied
	ToUserID   string
	Notes      string
	CreatedAt  time.Time
}

// DispositionWithNames is a disposition enriched with the display names of
// both ends, joined from the user table at read time.
type DispositionWithNames struct {
	Disposition

	FromName string
	ToName   string
}
