package http

import (
	"net/http"

	"locmaq-backend/internal/security"
	"locmaq-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handlers groups all HTTP handlers for router construction.
type Handlers struct {
	Quotes        *QuoteHandler
	Machines      *MachineHandler
	Addresses     *AddressHandler
	Notifications *NotificationHandler
	Users         *UserHandler
	Admin         *AdminHandler
}

// NewHandlers wires handlers from the service layer.
func NewHandlers(
	quotes service.QuoteService,
	machines service.MachineService,
	addresses service.AddressService,
	notifications service.NotificationService,
	users service.UserService,
	admin service.AdminService,
) *Handlers {
	return &Handlers{
		Quotes:        NewQuoteHandler(quotes),
		Machines:      NewMachineHandler(machines),
		Addresses:     NewAddressHandler(addresses),
		Notifications: NewNotificationHandler(notifications),
		Users:         NewUserHandler(users),
		Admin:         NewAdminHandler(admin),
	}
}

// NewRouter builds the API router with auth applied to every route.
func NewRouter(h *Handlers, verifier security.TokenVerifier) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(verifier))

	// Machines
	api.HandleFunc("/machines", h.Machines.Create).Methods(http.MethodPost)
	api.HandleFunc("/machines", h.Machines.List).Methods(http.MethodGet)
	api.HandleFunc("/machines/mine", h.Machines.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/machines/{id}", h.Machines.Get).Methods(http.MethodGet)
	api.HandleFunc("/machines/{id}/estimate", h.Machines.Estimate).Methods(http.MethodGet)
	api.HandleFunc("/machines/{id}", h.Machines.Update).Methods(http.MethodPut)
	api.HandleFunc("/machines/{id}", h.Machines.Delete).Methods(http.MethodDelete)

	// Addresses
	api.HandleFunc("/addresses", h.Addresses.Create).Methods(http.MethodPost)
	api.HandleFunc("/addresses", h.Addresses.List).Methods(http.MethodGet)
	api.HandleFunc("/addresses/{id}", h.Addresses.Delete).Methods(http.MethodDelete)

	// Quotes
	api.HandleFunc("/quotes", h.Quotes.Create).Methods(http.MethodPost)
	api.HandleFunc("/quotes/requested", h.Quotes.ListRequested).Methods(http.MethodGet)
	api.HandleFunc("/quotes/received", h.Quotes.ListReceived).Methods(http.MethodGet)
	api.HandleFunc("/quotes/{id}", h.Quotes.Get).Methods(http.MethodGet)
	api.HandleFunc("/quotes/{id}/terms", h.Quotes.SubmitTerms).Methods(http.MethodPost)
	api.HandleFunc("/quotes/{id}/status", h.Quotes.UpdateStatus).Methods(http.MethodPost)

	// Notifications
	api.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/unread-count", h.Notifications.UnreadCount).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", h.Notifications.MarkAsRead).Methods(http.MethodPost)

	// Profile
	api.HandleFunc("/users/me", h.Users.SyncProfile).Methods(http.MethodPost)
	api.HandleFunc("/users/me", h.Users.GetProfile).Methods(http.MethodGet)

	// Admin
	api.HandleFunc("/admin/dashboard", RequireAdmin(h.Admin.Dashboard)).Methods(http.MethodGet)

	return r
}
