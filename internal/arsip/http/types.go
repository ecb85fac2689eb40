package http

import (
	"time"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/pkg/jwtx"
)

// IdentityResponse mirrors the session identity returned by login and /me.
type IdentityResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

func toIdentityResponse(id jwtx.Identity) IdentityResponse {
	return IdentityResponse{
		ID:       id.UserID,
		Username: id.Username,
		Role:     id.Role,
		FullName: id.FullName,
	}
}

// LetterResponse is the wire form of a letter. "type" carries the direction,
// matching what the frontend has always sent and received.
type LetterResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	LetterNumber string `json:"letter_number"`
	Subject      string `json:"subject"`
	Sender       string `json:"sender"`
	Recipient    string `json:"recipient"`
	Date         string `json:"date"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	FilePath     string `json:"file_path,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func toLetterResponse(l domain.Letter) LetterResponse {
	return LetterResponse{
		ID:           l.ID,
		Type:         string(l.Direction),
		LetterNumber: l.Number,
		Subject:      l.Subject,
		Sender:       l.Sender,
		Recipient:    l.Recipient,
		Date:         l.Date.Format(time.DateOnly),
		Category:     l.Category,
		Status:       string(l.Status),
		FilePath:     l.FilePath,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toLetterResponses(letters []domain.Letter) []LetterResponse {
	out := make([]LetterResponse, len(letters))
	for i, l := range letters {
		out[i] = toLetterResponse(l)
	}
	return out
}

// DispositionResponse is a disposition joined with both display names.
type DispositionResponse struct {
	ID         string `json:"id"`
	LetterID   string `json:"letter_id"`
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	FromName   string `json:"from_name"`
	ToName     string `json:"to_name"`
	Notes      string `json:"notes"`
	CreatedAt  string `json:"created_at"`
}

func toDispositionResponse(d domain.DispositionWithNames) DispositionResponse {
	return DispositionResponse{
		ID:         d.ID,
		LetterID:   d.LetterID,
		FromUserID: d.FromUserID,
		ToUserID:   d.ToUserID,
		FromName:   d.FromName,
		ToName:     d.ToName,
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// UserResponse is a directory entry. It never carries the password hash.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}

// CreatedResponse acknowledges a creation with the new row id.
type CreatedResponse struct {
	ID string `json:"id"`
}

// StatusResponse acknowledges a mutation without a payload.
type StatusResponse struct {
	Success bool `json:"success"`
}

// NextNumberResponse carries a suggested letter number.
type NextNumberResponse struct {
	Number string `json:"number"`
}

// HealthResponse is served by the livez/readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
