package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"inmogestion-backend/internal/security"
	"inmogestion-backend/internal/service"
	"inmogestion-backend/internal/storage"
)

// NewRouter wires every API route. Auth endpoints and media downloads are
// public; everything else requires an access token.
func NewRouter(
	tokenManager security.TokenManager,
	authService service.AuthService,
	listingService service.ListingService,
	visitService service.VisitService,
	fileStore storage.FileStore,
) *mux.Router {
	authHandler := NewAuthHandler(authService)
	listingHandler := NewListingHandler(listingService)
	visitHandler := NewVisitHandler(visitService)
	mediaHandler := NewMediaHandler(fileStore, listingService)
	authMW := NewAuthMiddleware(tokenManager)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Public
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/listings/{id}/media/{kind}/{filename}", mediaHandler.Download).Methods("GET")

	// Authenticated
	protected := api.NewRoute().Subrouter()
	protected.Use(authMW.RequireAccess)
	protected.HandleFunc("/pricing/quote", listingHandler.Quote).Methods("POST")
	protected.HandleFunc("/listings", listingHandler.Create).Methods("POST")
	protected.HandleFunc("/listings", listingHandler.List).Methods("GET")
	protected.HandleFunc("/listings/search", listingHandler.Search).Methods("GET")
	protected.HandleFunc("/listings/summary", listingHandler.Summary).Methods("GET")
	protected.HandleFunc("/listings/{id}", listingHandler.Get).Methods("GET")
	protected.HandleFunc("/listings/{id}/status", listingHandler.UpdateStatus).Methods("PUT")
	protected.HandleFunc("/listings/{id}/payments", listingHandler.RecordPayment).Methods("POST")
	protected.HandleFunc("/listings/{id}/media/{kind}/{filename}", mediaHandler.Upload).Methods("PUT")
	protected.HandleFunc("/listings/{id}/visits", visitHandler.ListByListing).Methods("GET")
	protected.HandleFunc("/visits", visitHandler.Schedule).Methods("POST")
	protected.HandleFunc("/visits", visitHandler.ListMine).Methods("GET")
	protected.HandleFunc("/visits/{id}", visitHandler.Get).Methods("GET")
	protected.HandleFunc("/visits/{id}/status", visitHandler.UpdateStatus).Methods("PUT")

	return router
}
