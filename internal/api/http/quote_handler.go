package http

import (
	"encoding/json"
	"net/http"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/service"

	"github.com/gorilla/mux"
)

type QuoteHandler struct {
	quotes service.QuoteService
}

func NewQuoteHandler(quotes service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

type createQuoteRequest struct {
	MachineID string `json:"machine_id"`
	AddressID string `json:"address_id"`
	Purpose   string `json:"purpose"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	var req createQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	quote, err := h.quotes.CreateQuote(r.Context(), identity.UID, &service.CreateQuoteRequest{
		MachineID: req.MachineID,
		AddressID: req.AddressID,
		Purpose:   req.Purpose,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, quote)
}

type submitTermsRequest struct {
	ValueCents int32  `json:"value_cents"`
	Conditions string `json:"conditions,omitempty"`
}

func (h *QuoteHandler) SubmitTerms(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())
	quoteID := mux.Vars(r)["id"]

	var req submitTermsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	quote, err := h.quotes.SubmitTerms(r.Context(), identity.UID, quoteID, req.ValueCents, req.Conditions)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())
	quoteID := mux.Vars(r)["id"]

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	quote, err := h.quotes.UpdateStatus(r.Context(), identity.UID, quoteID, domain.QuoteStatus(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) ListRequested(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	quotes, err := h.quotes.ListForUser(r.Context(), identity.UID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"quotes": quotes})
}

func (h *QuoteHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	quotes, err := h.quotes.ListForOwner(r.Context(), identity.UID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"quotes": quotes})
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())
	quoteID := mux.Vars(r)["id"]

	quote, err := h.quotes.GetQuote(r.Context(), identity.UID, quoteID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}
