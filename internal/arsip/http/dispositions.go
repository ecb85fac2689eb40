package http

import (
	"encoding/json"
	"net/http"

	"github.com/arsipkita/arsip/internal/arsip/service"
	"github.com/arsipkita/arsip/pkg/httpx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

type DispositionsHandler struct {
	DispositionService *service.DispositionService
}

type createDispositionRequest struct {
	ToUserID string `json:"to_user_id"`
	Notes    string `json:"notes"`
}

type routeDispositionRequest struct {
	LetterID string `json:"letter_id"`
	ToUserID string `json:"to_user_id"`
	Notes    string `json:"notes"`
}

// HandleCreate routes the letter named in the path to another user.
//
//	@Summary		Create a disposition
//	@Description	Records a routing instruction from the current user to the recipient. A PENDING letter moves to PROCESSED on its first disposition.
//	@Tags			Dispositions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Letter id"
//	@Param			body	body		createDispositionRequest	true	"Recipient and notes"
//	@Success		200		{object}	CreatedResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing recipient or recipient does not exist"
//	@Failure		404		{object}	httpx.ErrorResponse	"Unknown letter"
//	@Router			/api/letters/{id}/dispositions [post].
func (h *DispositionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createDispositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}

	h.route(w, r, r.PathValue("id"), req.ToUserID, req.Notes)
}

// HandleRoute routes the letter named in the request body to another user.
//
//	@Summary		Create a disposition by letter id
//	@Description	Same as the nested letter route, with the letter id carried in the body instead of the path.
//	@Tags			Dispositions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		routeDispositionRequest	true	"Letter, recipient and notes"
//	@Success		200		{object}	CreatedResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing letter or recipient, or recipient does not exist"
//	@Failure		404		{object}	httpx.ErrorResponse	"Unknown letter"
//	@Router			/api/dispositions [post].
func (h *DispositionsHandler) HandleRoute(w http.ResponseWriter, r *http.Request) {
	var req routeDispositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}
	if req.LetterID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "letter_id is required")
		return
	}

	h.route(w, r, req.LetterID, req.ToUserID, req.Notes)
}

func (h *DispositionsHandler) route(w http.ResponseWriter, r *http.Request, letterID, toUserID, notes string) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}
	if toUserID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "to_user_id is required")
		return
	}

	disposition, err := h.DispositionService.Route(ctx, letterID, identity.UserID, toUserID, notes)
	if err != nil {
		log.Warn("disposition rejected", "letter_id", letterID, "to_user_id", toUserID, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("letter routed", "letter_id", letterID, "disposition_id", disposition.ID, "to_user_id", toUserID)
	httpx.WriteJSON(w, http.StatusOK, CreatedResponse{ID: disposition.ID})
}

// HandleList lists a letter's dispositions oldest first.
//
//	@Summary		List dispositions
//	@Description	Lists the routing history of a letter in chronological order, with sender and recipient display names resolved.
//	@Tags			Dispositions
//	@Produce		json
//	@Param			id	path		string	true	"Letter id"
//	@Success		200	{array}		DispositionResponse
//	@Router			/api/letters/{id}/dispositions [get].
func (h *DispositionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dispositions, err := h.DispositionService.ListForLetter(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]DispositionResponse, len(dispositions))
	for i, d := range dispositions {
		out[i] = toDispositionResponse(d)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
