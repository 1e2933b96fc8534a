package api

import (
	"net/http"

	"github.com/ValetTech/Valet/internal/auth"
	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/entities"
	"github.com/ValetTech/Valet/internal/service"
	"github.com/gorilla/mux"
)

// HostHandler serves the endpoints restricted to hosts. Every call acts on behalf
// of the authenticated host.
type HostHandler struct {
	Listings     *service.ListingService
	Reservations *service.ReservationService
	Inquiries    *service.InquiryService
	Queries      *service.QueryService
}

func (h *HostHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())

	var req entities.ListingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	listing, err := h.Listings.CreateListing(actor.ID, db.NewListing{
		Address:     req.Address,
		Description: req.Description,
		Rate:        req.Rate,
		RateType:    db.RateType(req.RateType),
		Availability: db.Availability{
			Start: req.Availability.Start,
			End:   req.Availability.End,
		},
		ApprovalMode:      db.ApprovalMode(req.ApprovalMode),
		SuitableForEvents: req.SuitableForEvents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, listing)
}

func (h *HostHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())
	id, err := h.Listings.DeleteListing(actor.ID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{ID: id})
}

func (h *HostHandler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())

	var req entities.StatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.Reservations.UpdateReservationStatus(actor.ID, mux.Vars(r)["id"], db.ReservationStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *HostHandler) UpdateEventInquiryStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())

	var req entities.StatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	inquiry, err := h.Inquiries.UpdateEventInquiryStatus(actor.ID, mux.Vars(r)["id"], db.EventInquiryStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inquiry)
}

func (h *HostHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())
	writeJSON(w, http.StatusOK, h.Queries.HostListings(actor.ID))
}

func (h *HostHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())
	writeJSON(w, http.StatusOK, h.Queries.HostReservations(actor.ID))
}

func (h *HostHandler) ListEventInquiries(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())
	writeJSON(w, http.StatusOK, h.Queries.HostEventInquiries(actor.ID))
}

func (h *HostHandler) Overview(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())
	writeJSON(w, http.StatusOK, h.Queries.HostOverview(actor.ID))
}
