package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"inmogestion-backend/internal/domain"
	"inmogestion-backend/internal/repository"
	"inmogestion-backend/internal/service"
)

type ListingHandler struct {
	listingService service.ListingService
}

func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

type listingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int32            `json:"total"`
	Page     int32            `json:"page"`
	PageSize int32            `json:"page_size"`
}

// Quote prices a draft without saving anything, so the client can show the
// commission split while the form is still open.
func (h *ListingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var in domain.PricingInput
	if !decodeBody(w, r, &in) {
		return
	}

	result, err := h.listingService.QuotePricing(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var draft service.ListingDraft
	if !decodeBody(w, r, &draft) {
		return
	}

	listing, err := h.listingService.CreateListing(r.Context(), claims.UserID, draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, listing)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	listing, err := h.listingService.GetListing(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	if r.URL.Query().Get("mine") == "true" {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		listings, total, err := h.listingService.ListMyListings(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, listingsResponse{Listings: listings, Total: total, Page: page, PageSize: pageSize})
		return
	}

	listings, total, err := h.listingService.ListListings(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listingsResponse{Listings: listings, Total: total, Page: page, PageSize: pageSize})
}

func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	q := r.URL.Query()

	filter := repository.ListingFilter{
		Query:        q.Get("q"),
		City:         q.Get("city"),
		PropertyType: domain.PropertyType(q.Get("property_type")),
		Status:       domain.SaleStatus(q.Get("status")),
		Currency:     domain.Currency(q.Get("currency")),
	}
	if raw := q.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "max_price must be a number"})
			return
		}
		filter.MaxPrice = maxPrice
	}

	listings, total, err := h.listingService.SearchListings(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listingsResponse{Listings: listings, Total: total, Page: page, PageSize: pageSize})
}

type statusUpdateRequest struct {
	Status      string `json:"status"`
	BuyerClient string `json:"buyer_client"`
}

func (h *ListingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req statusUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	listing, err := h.listingService.UpdateSaleStatus(r.Context(), id, domain.SaleStatus(req.Status), req.BuyerClient)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

type paymentRequest struct {
	Amount float64 `json:"amount"`
}

func (h *ListingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req paymentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	listing, err := h.listingService.RecordPayment(r.Context(), id, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.listingService.InventorySummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = int32(n)
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			pageSize = int32(n)
		}
	}
	return page, pageSize
}
