package http

import (
	"encoding/json"
	"net/http"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/service"

	"github.com/gorilla/mux"
)

type AddressHandler struct {
	addresses service.AddressService
}

func NewAddressHandler(addresses service.AddressService) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

type addressRequest struct {
	Label      string `json:"label"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	addr := &domain.Address{
		UserID:     identity.UID,
		Label:      req.Label,
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		ZipCode:    req.ZipCode,
	}
	if err := h.addresses.AddAddress(r.Context(), addr); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, addr)
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	addrs, err := h.addresses.ListMyAddresses(r.Context(), identity.UID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"addresses": addrs})
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	if err := h.addresses.DeleteAddress(r.Context(), identity.UID, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
