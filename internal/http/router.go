package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripdesk/internal/handlers"
	"tripdesk/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	agencyHandler *handlers.AgencyHandler,
	stakeholderHandler *handlers.StakeholderHandler,
	locationHandler *handlers.LocationHandler,
	templateHandler *handlers.TemplateHandler,
	itineraryHandler *handlers.ItineraryHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes - Session
	sessionAPI := r.PathPrefix("/api/auth").Subrouter()
	sessionAPI.Use(authMiddleware.Authenticate)
	sessionAPI.HandleFunc("/me", authHandler.Session).Methods("GET")

	// Protected API routes - Agency profile
	agencyAPI := r.PathPrefix("/api/agency").Subrouter()
	agencyAPI.Use(authMiddleware.Authenticate)
	agencyAPI.HandleFunc("", agencyHandler.GetAgencyDetails).Methods("GET")
	agencyAPI.HandleFunc("", agencyHandler.SaveAgencyDetails).Methods("PUT")

	// Protected API routes - Stakeholders
	stakeholdersAPI := r.PathPrefix("/api/stakeholders").Subrouter()
	stakeholdersAPI.Use(authMiddleware.Authenticate)
	stakeholdersAPI.HandleFunc("", stakeholderHandler.ListStakeholders).Methods("GET")
	stakeholdersAPI.HandleFunc("", stakeholderHandler.CreateStakeholder).Methods("POST")
	stakeholdersAPI.HandleFunc("/{id}", stakeholderHandler.GetStakeholder).Methods("GET")
	stakeholdersAPI.HandleFunc("/{id}", stakeholderHandler.UpdateStakeholder).Methods("PUT")
	stakeholdersAPI.HandleFunc("/{id}", stakeholderHandler.DeleteStakeholder).Methods("DELETE")

	// Protected API routes - Locations
	locationsAPI := r.PathPrefix("/api/locations").Subrouter()
	locationsAPI.Use(authMiddleware.Authenticate)
	locationsAPI.HandleFunc("", locationHandler.ListLocations).Methods("GET")
	locationsAPI.HandleFunc("", locationHandler.CreateLocation).Methods("POST")

	// Protected API routes - Itineraries
	itinerariesAPI := r.PathPrefix("/api/itineraries").Subrouter()
	itinerariesAPI.Use(authMiddleware.Authenticate)
	itinerariesAPI.HandleFunc("", itineraryHandler.ListItineraries).Methods("GET")
	itinerariesAPI.HandleFunc("", itineraryHandler.CreateItinerary).Methods("POST")
	itinerariesAPI.HandleFunc("/{id}", itineraryHandler.GetItinerary).Methods("GET")
	itinerariesAPI.HandleFunc("/{id}", itineraryHandler.UpdateItinerary).Methods("PUT")
	itinerariesAPI.HandleFunc("/{id}", itineraryHandler.DeleteItinerary).Methods("DELETE")
	itinerariesAPI.HandleFunc("/{id}/pdf", itineraryHandler.ExportPDF).Methods("GET")
	itinerariesAPI.HandleFunc("/{id}/assign", itineraryHandler.AssignItinerary).Methods("POST")
	itinerariesAPI.HandleFunc("/{id}/assignments", itineraryHandler.ListAssignments).Methods("GET")

	// Protected API routes - Templates. Day templates are per-user CRUD,
	// multi-day plans are curated by admins and readable by everyone.
	templatesAPI := r.PathPrefix("/api/templates").Subrouter()
	templatesAPI.Use(authMiddleware.Authenticate)
	templatesAPI.HandleFunc("/masters", templateHandler.ListMasters).Methods("GET")
	templatesAPI.HandleFunc("/masters", templateHandler.CreateMaster).Methods("POST")
	templatesAPI.HandleFunc("/masters/{id}", templateHandler.UpdateMaster).Methods("PUT")
	templatesAPI.HandleFunc("/masters/{id}", templateHandler.DeleteMaster).Methods("DELETE")
	templatesAPI.HandleFunc("/itineraries", templateHandler.ListItineraryTemplates).Methods("GET")
	templatesAPI.HandleFunc("/itineraries/{id}", templateHandler.GetItineraryTemplate).Methods("GET")

	// Admin-only API routes
	adminAPI := r.PathPrefix("/api/admin").Subrouter()
	adminAPI.Use(authMiddleware.Authenticate)
	adminAPI.Use(authMiddleware.RequireAdmin)
	adminAPI.HandleFunc("/users", userHandler.ListUsers).Methods("GET")
	adminAPI.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	adminAPI.HandleFunc("/users/{id}", userHandler.UpdateUser).Methods("PUT")
	adminAPI.HandleFunc("/users/{id}/toggle-active", userHandler.ToggleStatus).Methods("PATCH")
	adminAPI.HandleFunc("/templates/itineraries", templateHandler.CreateItineraryTemplate).Methods("POST")
	adminAPI.HandleFunc("/templates/itineraries/{id}", templateHandler.UpdateItineraryTemplate).Methods("PUT")
	adminAPI.HandleFunc("/templates/itineraries/{id}", templateHandler.DeleteItineraryTemplate).Methods("DELETE")

	return r
}
