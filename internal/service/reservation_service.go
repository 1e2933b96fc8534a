package service

import (
	"fmt"
	"strings"

	"github.com/ValetTech/Valet/internal/db"
	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/ValetTech/Valet/internal/repository"
	"github.com/sirupsen/logrus"
)

type ReservationService struct {
	Store  *repository.Store
	Policy TransitionPolicy
}

func NewReservationService(store *repository.Store, policy TransitionPolicy) *ReservationService {
	return &ReservationService{Store: store, Policy: policy}
}

// CreateReservation books a listing for driverID. The initial status comes from the
// listing's approval mode, never from the caller. Overlapping bookings are accepted.
func (s *ReservationService) CreateReservation(driverID string, in db.NewReservation) (db.Reservation, error) {
	if strings.TrimSpace(in.ListingID) == "" {
		return db.Reservation{}, fmt.Errorf("listing id is required: %w", apperrors.ErrValidation)
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return db.Reservation{}, fmt.Errorf("start and end time are required: %w", apperrors.ErrValidation)
	}

	res, err := s.Store.CreateReservation(driverID, in)
	if err != nil {
		return db.Reservation{}, err
	}
	logrus.WithFields(logrus.Fields{
		"reservation_id": res.ID,
		"listing_id":     res.ListingID,
		"driver_id":      driverID,
		"status":         res.Status,
	}).Info("Reservation created")
	return res, nil
}

// UpdateReservationStatus lets the host owning the reservation's listing move it to status.
func (s *ReservationService) UpdateReservationStatus(hostID, id string, status db.ReservationStatus) (db.Reservation, error) {
	if !status.Valid() {
		return db.Reservation{}, fmt.Errorf("reservation status %q: %w", status, apperrors.ErrValidation)
	}

	current, err := s.Store.GetReservation(id)
	if err != nil {
		return db.Reservation{}, err
	}
	listing, err := s.Store.GetListing(current.ListingID)
	if err != nil {
		return db.Reservation{}, err
	}
	if listing.HostID != hostID {
		return db.Reservation{}, fmt.Errorf("reservation %q is on another host's listing: %w", id, apperrors.ErrForbidden)
	}

	updated, err := s.Store.UpdateReservationStatusIf(id, status, func(r db.Reservation) error {
		return s.Policy.CheckReservation(r.Status, status)
	})
	if err != nil {
		return db.Reservation{}, err
	}
	logrus.WithFields(logrus.Fields{
		"reservation_id": id,
		"host_id":        hostID,
		"status":         status,
	}).Info("Reservation status updated")
	return updated, nil
}
