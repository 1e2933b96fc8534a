package api

import (
	"net/http"

	"github.com/ValetTech/Valet/internal/auth"
	"github.com/ValetTech/Valet/internal/db"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route. Authenticated routes resolve the caller from a
// bearer token signed with jwtSecret.
func NewRouter(user *UserHandler, host *HostHandler, jwtSecret string) http.Handler {
	authed := auth.Middleware(jwtSecret)
	hostOnly := func(f http.HandlerFunc) http.Handler {
		return authed(auth.RequireRole(db.RoleHost)(f))
	}
	driverOnly := func(f http.HandlerFunc) http.Handler {
		return authed(auth.RequireRole(db.RoleDriver)(f))
	}

	r := mux.NewRouter()
	r.Use(Logger)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public endpoints
	api.HandleFunc("/data", user.GetData).Methods(http.MethodGet)
	api.HandleFunc("/waitlist", user.JoinWaitlist).Methods(http.MethodPost)
	api.HandleFunc("/search/nearby", user.SearchNearby).Methods(http.MethodPost)
	api.HandleFunc("/events/listings", user.EventListings).Methods(http.MethodGet)
	api.HandleFunc("/earnings/projection", user.ProjectEarnings).Methods(http.MethodPost)

	// Any authenticated user
	api.Handle("/inquiries", authed(http.HandlerFunc(user.CreateEventInquiry))).Methods(http.MethodPost)

	// Drivers
	api.Handle("/reservations", driverOnly(user.CreateReservation)).Methods(http.MethodPost)

	// Hosts
	api.Handle("/listings", hostOnly(host.CreateListing)).Methods(http.MethodPost)
	api.Handle("/listings/{id}", hostOnly(host.DeleteListing)).Methods(http.MethodDelete)
	api.Handle("/reservations/{id}/status", hostOnly(host.UpdateReservationStatus)).Methods(http.MethodPut)
	api.Handle("/inquiries/{id}/status", hostOnly(host.UpdateEventInquiryStatus)).Methods(http.MethodPut)
	api.Handle("/host/listings", hostOnly(host.ListListings)).Methods(http.MethodGet)
	api.Handle("/host/reservations", hostOnly(host.ListReservations)).Methods(http.MethodGet)
	api.Handle("/host/inquiries", hostOnly(host.ListEventInquiries)).Methods(http.MethodGet)
	api.Handle("/host/overview", hostOnly(host.Overview)).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(logrus.StandardLogger()),
		handlers.PrintRecoveryStack(true),
	)
	return recovery(cors(r))
}
