package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/service"
)

type VisitHandler struct {
	visitService service.VisitService
}

func NewVisitHandler(visitService service.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

type scheduleVisitRequest struct {
	ListingID   string `json:"listing_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	VisitDate   string `json:"visit_date"`
	VisitTime   string `json:"visit_time"`
	Note        string `json:"note"`
}

func (h *VisitHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req scheduleVisitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	visit, err := h.visitService.ScheduleVisit(r.Context(), claims.UserID, req.ListingID, req.ClientName, req.ClientPhone, req.VisitDate, req.VisitTime, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, visit)
}

func (h *VisitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	visit, err := h.visitService.GetVisit(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, visit)
}

func (h *VisitHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	visits, err := h.visitService.ListMyVisits(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Visit{"visits": visits})
}

func (h *VisitHandler) ListByListing(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["id"]
	visits, err := h.visitService.ListVisitsByListing(r.Context(), listingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Visit{"visits": visits})
}

type visitStatusRequest struct {
	Status string `json:"status"`
}

func (h *VisitHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req visitStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	visit, err := h.visitService.UpdateVisitStatus(r.Context(), id, domain.VisitStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, visit)
}
