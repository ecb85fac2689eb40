package http

import (
	"encoding/json"
	"net/http"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/internal/arsip/service"
	"github.com/arsipkita/arsip/pkg/httpx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList lists the user directory.
//
//	@Summary		List users
//	@Description	Lists all users for disposition recipient pickers. Password hashes are never included.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}	UserResponse
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// HandleCreate registers a new user. Admin only.
//
//	@Summary		Create a user
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		createUserRequest	true	"New user"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing fields, unknown role or username taken"
//	@Failure		403		{object}	httpx.ErrorResponse	"Caller is not an admin"
//	@Router			/api/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}
	if req.Username == "" || req.Password == "" || req.FullName == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "username, password and full_name are required")
		return
	}

	user, err := h.UserService.Create(ctx, req.Username, req.Password, req.FullName, domain.Role(req.Role))
	if err != nil {
		log.Warn("user create rejected", "username", req.Username, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("user created", "user_id", user.ID, "username", user.Username, "role", user.Role)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleDelete removes a user. Admin only.
//
//	@Summary		Delete a user
//	@Description	Removes a user. Self-deletion is refused, as is deleting a user who appears in any disposition.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string	true	"User id"
//	@Success		200	{object}	StatusResponse
//	@Failure		400	{object}	httpx.ErrorResponse	"Self-deletion or user referenced by dispositions"
//	@Failure		403	{object}	httpx.ErrorResponse	"Caller is not an admin"
//	@Failure		404	{object}	httpx.ErrorResponse	"Unknown user"
//	@Router			/api/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	id := r.PathValue("id")
	if err := h.UserService.Delete(ctx, id, identity.UserID); err != nil {
		log.Warn("user delete rejected", "user_id", id, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("user deleted", "user_id", id, "actor_id", identity.UserID)
	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Success: true})
}
