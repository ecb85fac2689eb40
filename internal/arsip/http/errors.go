package http

import (
	"errors"
	"net/http"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/internal/arsip/service"
	"github.com/arsipkita/arsip/pkg/httpx"
)

// writeServiceError maps service sentinels onto HTTP status codes so that
// handlers stay free of case-by-case switch blocks.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "username or password is incorrect")
	case errors.Is(err, service.ErrLetterNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "letter not found")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "user not found")
	case errors.Is(err, service.ErrDuplicateNumber):
		httpx.WriteError(w, http.StatusBadRequest, "duplicate_number", "letter number already exists")
	case errors.Is(err, service.ErrDuplicateUsername):
		httpx.WriteError(w, http.StatusBadRequest, "duplicate_username", "username already exists")
	case errors.Is(err, service.ErrInvalidRole):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_role", "role must be ADMIN, STAFF or LEADERSHIP")
	case errors.Is(err, service.ErrSelfDeletion):
		httpx.WriteError(w, http.StatusBadRequest, "self_deletion", "cannot delete your own account")
	case errors.Is(err, service.ErrUserReferenced):
		httpx.WriteError(w, http.StatusBadRequest, "user_referenced", "user is referenced by dispositions")
	case errors.Is(err, domain.ErrUnknownStatus):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_status", "status must be PENDING, PROCESSED or COMPLETED")
	case errors.Is(err, domain.ErrInvalidTransition):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_transition", "status can only move forward")
	case errors.Is(err, service.ErrRecipientNotFound):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_recipient", "disposition recipient does not exist")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "internal server error")
	}
}
