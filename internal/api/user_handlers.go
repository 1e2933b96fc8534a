package api

import (
	"net/http"
	"time"

	"github.com/ValetTech/Valet/internal/auth"
	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/entities"
	"github.com/ValetTech/Valet/internal/repository"
	"github.com/ValetTech/Valet/internal/service"
	"github.com/ValetTech/Valet/internal/utils"
)

// UserHandler serves the driver, event planner and public endpoints.
type UserHandler struct {
	Store        *repository.Store
	Reservations *service.ReservationService
	Inquiries    *service.InquiryService
	Queries      *service.QueryService
	Waitlist     *service.WaitlistService
	Search       *service.SearchService
}

func (h *UserHandler) GetData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DataResponse(h.Store.Snapshot()))
}

func (h *UserHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFrom(r.Context())

	var req entities.ReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.Reservations.CreateReservation(actor.ID, db.NewReservation{
		ListingID: req.ListingID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *UserHandler) CreateEventInquiry(w http.ResponseWriter, r *http.Request) {
	var req entities.EventInquiryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	inquiry, err := h.Inquiries.CreateEventInquiry(db.NewEventInquiry{
		ListingID:         req.ListingID,
		UserName:          req.UserName,
		UserEmail:         req.UserEmail,
		UserPhone:         req.UserPhone,
		EventType:         req.EventType,
		EventDate:         req.EventDate,
		NumberOfAttendees: req.NumberOfAttendees,
		Message:           req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inquiry)
}

func (h *UserHandler) EventListings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Queries.EventListings())
}

func (h *UserHandler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	var req entities.WaitlistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	ack, err := h.Waitlist.Join(r.Context(), db.UserRole(req.Role), req.Email, req.Answers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ack)
}

func (h *UserHandler) SearchNearby(w http.ResponseWriter, r *http.Request) {
	var req entities.NearbySearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.Search.FindNearby(r.Context(), db.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}, req.Query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *UserHandler) ProjectEarnings(w http.ResponseWriter, r *http.Request) {
	var req entities.EarningsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	days := make([]time.Weekday, 0, len(req.ActiveDays))
	for _, d := range req.ActiveDays {
		day, err := utils.ParseWeekday(d)
		if err != nil {
			writeError(w, err)
			return
		}
		days = append(days, day)
	}
	projection, err := service.ProjectEarnings(service.EarningsInput{
		Rate:       req.Rate,
		SpotCount:  req.SpotCount,
		ActiveDays: days,
		Start:      req.StartTime,
		End:        req.EndTime,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projection)
}
