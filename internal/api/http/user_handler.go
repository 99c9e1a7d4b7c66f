package http

import (
	"encoding/json"
	"net/http"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/service"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type syncProfileRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	DeviceToken string `json:"device_token,omitempty"`
}

// SyncProfile mirrors the caller's auth profile and device token so
// notification delivery can reach them.
func (h *UserHandler) SyncProfile(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	var req syncProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	name := req.Name
	if name == "" {
		name = identity.Name
	}
	user := &domain.User{
		ID:          identity.UID,
		Name:        name,
		Email:       identity.Email,
		Phone:       req.Phone,
		DeviceToken: req.DeviceToken,
	}
	if err := h.users.SyncProfile(r.Context(), user); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	user, err := h.users.GetProfile(r.Context(), identity.UID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
