package http

import (
	"net/http"

	"locmaq-backend/internal/service"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())
	q := r.URL.Query()

	notes, total, err := h.notifications.GetNotifications(r.Context(), identity.UID,
		parseInt32(q.Get("page"), 1), parseInt32(q.Get("page_size"), 20))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"notifications": notes, "total": total})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	if err := h.notifications.MarkAsRead(r.Context(), identity.UID, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	count, err := h.notifications.CountUnread(r.Context(), identity.UID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"unread": count})
}
