package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/service"

	"github.com/gorilla/mux"
)

type MachineHandler struct {
	machines service.MachineService
}

func NewMachineHandler(machines service.MachineService) *MachineHandler {
	return &MachineHandler{machines: machines}
}

type machineRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	WorkPhase        string `json:"work_phase"`
	Application      string `json:"application"`
	Description      string `json:"description"`
	DailyRateCents   int32  `json:"daily_rate_cents"`
	WeeklyRateCents  int32  `json:"weekly_rate_cents,omitempty"`
	MonthlyRateCents int32  `json:"monthly_rate_cents,omitempty"`
	Status           string `json:"status,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
}

func (h *MachineHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	var req machineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	machine := &domain.Machine{
		OwnerID:          identity.UID,
		Name:             req.Name,
		Category:         req.Category,
		WorkPhase:        req.WorkPhase,
		Application:      req.Application,
		Description:      req.Description,
		DailyRateCents:   req.DailyRateCents,
		WeeklyRateCents:  req.WeeklyRateCents,
		MonthlyRateCents: req.MonthlyRateCents,
		Status:           domain.MachineStatus(req.Status),
		ImageURL:         req.ImageURL,
	}
	if err := h.machines.AddMachine(r.Context(), machine); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, machine)
}

func (h *MachineHandler) Get(w http.ResponseWriter, r *http.Request) {
	machine, err := h.machines.GetMachine(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, machine)
}

func (h *MachineHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	var req machineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	machine := &domain.Machine{
		ID:               mux.Vars(r)["id"],
		OwnerID:          identity.UID,
		Name:             req.Name,
		Category:         req.Category,
		WorkPhase:        req.WorkPhase,
		Application:      req.Application,
		Description:      req.Description,
		DailyRateCents:   req.DailyRateCents,
		WeeklyRateCents:  req.WeeklyRateCents,
		MonthlyRateCents: req.MonthlyRateCents,
		Status:           domain.MachineStatus(req.Status),
		ImageURL:         req.ImageURL,
	}
	if err := h.machines.UpdateMachine(r.Context(), identity.UID, machine); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, machine)
}

func (h *MachineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	if err := h.machines.DeleteMachine(r.Context(), identity.UID, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// List serves both the plain catalog listing and filtered search, depending
// on which query parameters are present.
func (h *MachineHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parseInt32(q.Get("page"), 1)
	pageSize := parseInt32(q.Get("page_size"), 20)

	query := q.Get("q")
	category := q.Get("category")
	workPhase := q.Get("work_phase")
	application := q.Get("application")

	var (
		machines []domain.Machine
		total    int32
		err      error
	)
	if query == "" && category == "" && workPhase == "" && application == "" {
		machines, total, err = h.machines.ListMachines(r.Context(), page, pageSize)
	} else {
		machines, total, err = h.machines.SearchMachines(r.Context(), query, category, workPhase, application, page, pageSize)
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"machines": machines, "total": total})
}

func (h *MachineHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())
	q := r.URL.Query()

	machines, total, err := h.machines.ListMyMachines(r.Context(), identity.UID,
		parseInt32(q.Get("page"), 1), parseInt32(q.Get("page_size"), 20))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"machines": machines, "total": total})
}

// Estimate prices a rental period against the machine's tiered rates.
func (h *MachineHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	est, err := h.machines.EstimateRental(r.Context(), mux.Vars(r)["id"], q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, est)
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 1 {
		return fallback
	}
	return int32(n)
}
