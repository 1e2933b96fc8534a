package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/ValetTech/Valet/internal/db"
	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/ValetTech/Valet/internal/repository"
	"github.com/sirupsen/logrus"
)

type InquiryService struct {
	Store  *repository.Store
	Policy TransitionPolicy
	Sender *SenderService
}

func NewInquiryService(store *repository.Store, policy TransitionPolicy, sender *SenderService) *InquiryService {
	return &InquiryService{Store: store, Policy: policy, Sender: sender}
}

// CreateEventInquiry files an inquiry against a listing. The host is taken from the
// listing and the status always starts as PENDING.
func (s *InquiryService) CreateEventInquiry(in db.NewEventInquiry) (db.EventInquiry, error) {
	if err := validateInquiry(in); err != nil {
		return db.EventInquiry{}, err
	}
	inquiry, err := s.Store.CreateEventInquiry(in)
	if err != nil {
		return db.EventInquiry{}, err
	}
	logrus.WithFields(logrus.Fields{
		"inquiry_id": inquiry.ID,
		"listing_id": inquiry.ListingID,
		"host_id":    inquiry.HostID,
	}).Info("Event inquiry created")
	return inquiry, nil
}

func (s *InquiryService) UpdateEventInquiryStatus(hostID, id string, status db.EventInquiryStatus) (db.EventInquiry, error) {
	if !status.Valid() {
		return db.EventInquiry{}, fmt.Errorf("event inquiry status %q: %w", status, apperrors.ErrValidation)
	}

	var previous db.EventInquiryStatus
	updated, err := s.Store.UpdateEventInquiryStatusIf(id, status, func(i db.EventInquiry) error {
		if i.HostID != hostID {
			return fmt.Errorf("event inquiry %q belongs to another host: %w", id, apperrors.ErrForbidden)
		}
		previous = i.Status
		return s.Policy.CheckInquiry(i.Status, status)
	})
	if err != nil {
		return db.EventInquiry{}, err
	}
	logrus.WithFields(logrus.Fields{
		"inquiry_id": id,
		"host_id":    hostID,
		"status":     status,
	}).Info("Event inquiry status updated")

	if previous != status && status != db.InquiryPending && s.Sender != nil {
		address := ""
		if listing, err := s.Store.GetListing(updated.ListingID); err == nil {
			address = listing.Address
		}
		s.Sender.SendInquiryUpdate(updated, address)
	}
	return updated, nil
}

func validateInquiry(in db.NewEventInquiry) error {
	switch {
	case strings.TrimSpace(in.ListingID) == "":
		return fmt.Errorf("listing id is required: %w", apperrors.ErrValidation)
	case strings.TrimSpace(in.UserName) == "":
		return fmt.Errorf("name is required: %w", apperrors.ErrValidation)
	case strings.TrimSpace(in.EventType) == "":
		return fmt.Errorf("event type is required: %w", apperrors.ErrValidation)
	case in.EventDate.IsZero():
		return fmt.Errorf("event date is required: %w", apperrors.ErrValidation)
	case in.NumberOfAttendees < 1:
		return fmt.Errorf("number of attendees must be positive: %w", apperrors.ErrValidation)
	}
	if _, err := mail.ParseAddress(in.UserEmail); err != nil {
		return fmt.Errorf("email %q: %w", in.UserEmail, apperrors.ErrValidation)
	}
	return nil
}
