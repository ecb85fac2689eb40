package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/internal/arsip/files"
	"github.com/arsipkita/arsip/internal/arsip/service"
	"github.com/arsipkita/arsip/internal/arsip/store"
	"github.com/arsipkita/arsip/pkg/httpx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

// maxUploadBytes caps a single letter upload, attachment included.
const maxUploadBytes = 20 << 20

type LettersHandler struct {
	LetterService *service.LetterService
}

// HandleList lists archived letters, newest first.
//
//	@Summary		List letters
//	@Description	Lists letters ordered by archival time descending. Optional filters: direction ("type") and free-text search over number, subject, sender and recipient.
//	@Tags			Letters
//	@Produce		json
//	@Param			type	query		string	false	"Direction filter (INCOMING or OUTGOING)"
//	@Param			search	query		string	false	"Substring match on number, subject, sender or recipient"
//	@Success		200		{array}		LetterResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Unknown direction"
//	@Router			/api/letters [get].
func (h *LettersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter store.LetterFilter
	if raw := r.URL.Query().Get("type"); raw != "" {
		d, err := domain.ParseDirection(raw)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_direction", "type must be INCOMING or OUTGOING")
			return
		}
		filter.Direction = d
	}
	filter.Search = r.URL.Query().Get("search")

	letters, err := h.LetterService.List(ctx, filter)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list letters", "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLetterResponses(letters))
}

// HandleCreate archives a new letter from a multipart form.
//
//	@Summary		Archive a letter
//	@Description	Creates a letter with status PENDING. Multipart fields: type, letter_number, subject, sender, recipient, date (YYYY-MM-DD), category and an optional file part.
//	@Tags			Letters
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		200	{object}	LetterResponse
//	@Failure		400	{object}	httpx.ErrorResponse	"Missing or malformed fields, or the number is already archived"
//	@Router			/api/letters [post].
func (h *LettersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "request must be multipart/form-data")
		return
	}

	direction, err := domain.ParseDirection(r.FormValue("type"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_direction", "type must be INCOMING or OUTGOING")
		return
	}

	in := service.CreateLetterInput{
		Direction: direction,
		Number:    r.FormValue("letter_number"),
		Subject:   r.FormValue("subject"),
		Sender:    r.FormValue("sender"),
		Recipient: r.FormValue("recipient"),
		Category:  r.FormValue("category"),
	}
	if in.Number == "" || in.Subject == "" || in.Sender == "" || in.Recipient == "" || in.Category == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
			"letter_number, subject, sender, recipient and category are required")
		return
	}

	in.Date, err = time.Parse(time.DateOnly, r.FormValue("date"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		in.Filename = header.Filename
		in.File = file
	} else if !errors.Is(err, http.ErrMissingFile) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed file part")
		return
	}

	letter, err := h.LetterService.Create(ctx, in)
	if err != nil {
		log.Warn("letter create rejected", "letter_number", in.Number, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("letter archived", "letter_id", letter.ID, "letter_number", letter.Number, "direction", letter.Direction)
	httpx.WriteJSON(w, http.StatusOK, toLetterResponse(letter))
}

// HandleGet fetches one letter by id.
//
//	@Summary		Get a letter
//	@Tags			Letters
//	@Produce		json
//	@Param			id	path		string	true	"Letter id"
//	@Success		200	{object}	LetterResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"Unknown letter"
//	@Router			/api/letters/{id} [get].
func (h *LettersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	letter, err := h.LetterService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLetterResponse(letter))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus moves a letter forward through its lifecycle.
//
//	@Summary		Update letter status
//	@Description	Moves the letter to the requested status. The lifecycle is forward-only: PENDING, PROCESSED, COMPLETED. Requesting the current status is a no-op.
//	@Tags			Letters
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Letter id"
//	@Param			body	body		updateStatusRequest	true	"Target status"
//	@Success		200		{object}	StatusResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Unknown status or backward transition"
//	@Failure		404		{object}	httpx.ErrorResponse	"Unknown letter"
//	@Router			/api/letters/{id}/status [patch].
func (h *LettersHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}

	target, err := domain.ParseStatus(req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	id := r.PathValue("id")
	if err := h.LetterService.AdvanceStatus(ctx, id, target); err != nil {
		writeServiceError(w, err)
		return
	}

	log.Info("letter status updated", "letter_id", id, "status", target)
	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Success: true})
}

// HandleDelete removes a letter, its dispositions and its attachment.
//
//	@Summary		Delete a letter
//	@Tags			Letters
//	@Produce		json
//	@Param			id	path		string	true	"Letter id"
//	@Success		200	{object}	StatusResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"Unknown letter"
//	@Router			/api/letters/{id} [delete].
func (h *LettersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.LetterService.Delete(ctx, id); err != nil {
		writeServiceError(w, err)
		return
	}

	slogx.FromContext(ctx).Info("letter deleted", "letter_id", id)
	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Success: true})
}

// HandleNextNumber suggests the next sequential letter number.
//
//	@Summary		Suggest next letter number
//	@Description	Returns an advisory candidate of the form {seq}/{SM|SK}/{year}, counted over letters archived this year. The number is not reserved; a concurrent archive can take it first.
//	@Tags			Letters
//	@Produce		json
//	@Param			type	query		string	true	"Direction (INCOMING or OUTGOING)"
//	@Success		200		{object}	NextNumberResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Unknown direction"
//	@Router			/api/letters/next-number [get].
func (h *LettersHandler) HandleNextNumber(w http.ResponseWriter, r *http.Request) {
	direction, err := domain.ParseDirection(r.URL.Query().Get("type"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_direction", "type must be INCOMING or OUTGOING")
		return
	}

	number, err := h.LetterService.SuggestNextNumber(r.Context(), direction)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, NextNumberResponse{Number: number})
}

type LetterFileHandler struct {
	LetterService *service.LetterService
	Files         files.Store
}

// ServeHTTP serves a letter's attachment, either by redirect or by streaming.
//
//	@Summary		Download letter attachment
//	@Description	Redirects to a short-lived URL when the attachment store supports it, otherwise streams the file.
//	@Tags			Letters
//	@Param			id	path	string	true	"Letter id"
//	@Success		302	"Redirect to presigned URL"
//	@Success		200	"Attachment bytes"
//	@Failure		404	{object}	httpx.ErrorResponse	"Unknown letter or no attachment"
//	@Router			/api/letters/{id}/file [get].
func (h *LetterFileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	letter, err := h.LetterService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if letter.FilePath == "" {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "letter has no attachment")
		return
	}

	url, err := h.Files.RedirectURL(ctx, letter.FilePath)
	if err != nil {
		log.Error("failed to presign attachment", "letter_id", letter.ID, "err", err)
		writeServiceError(w, err)
		return
	}
	if url != "" {
		http.Redirect(w, r, url, http.StatusFound)
		return
	}

	rc, err := h.Files.Open(ctx, letter.FilePath)
	if err != nil {
		if errors.Is(err, files.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "attachment is missing from storage")
			return
		}
		log.Error("failed to open attachment", "letter_id", letter.ID, "err", err)
		writeServiceError(w, err)
		return
	}
	defer rc.Close()

	name := path.Base(letter.FilePath)
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))

	if _, err := io.Copy(w, rc); err != nil {
		log.Warn("attachment stream interrupted", "letter_id", letter.ID, "err", err)
	}
}
