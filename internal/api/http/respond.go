package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"inmogestion-backend/internal/logger"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/rowstore"
	"inmogestion-backend/internal/service"
	"inmogestion-backend/internal/utils"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain and service errors onto HTTP status codes so
// handlers stay free of status-code logic.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidSalePrice),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidVisitDate),
		errors.Is(err, service.ErrInvalidVisitTime),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, utils.ErrUnknownPricingMode),
		errors.Is(err, utils.ErrUnknownCurrency),
		errors.Is(err, utils.ErrNegativeAmount),
		errors.Is(err, utils.ErrCommissionRange):
		status = http.StatusBadRequest
	case errors.Is(err, rowstore.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
