package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ValetTech/Valet/internal/db"
	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/ValetTech/Valet/internal/repository"
	"github.com/ValetTech/Valet/internal/utils"
	"github.com/sirupsen/logrus"
)

type ListingService struct {
	Store *repository.Store
}

func NewListingService(store *repository.Store) *ListingService {
	return &ListingService{Store: store}
}

func (s *ListingService) CreateListing(hostID string, in db.NewListing) (db.Listing, error) {
	if err := validateListing(in); err != nil {
		return db.Listing{}, err
	}
	listing := s.Store.CreateListing(hostID, in)
	logrus.WithFields(logrus.Fields{
		"listing_id":    listing.ID,
		"host_id":       hostID,
		"approval_mode": listing.ApprovalMode,
	}).Info("Listing created")
	return listing, nil
}

// DeleteListing removes a listing owned by hostID along with its reservations and
// inquiries. Deleting an id that no longer exists succeeds.
func (s *ListingService) DeleteListing(hostID, id string) (string, error) {
	listing, err := s.Store.GetListing(id)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return id, nil
	case err != nil:
		return "", err
	case listing.HostID != hostID:
		return "", fmt.Errorf("listing %q belongs to another host: %w", id, apperrors.ErrForbidden)
	}

	s.Store.DeleteListing(id)
	logrus.WithFields(logrus.Fields{"listing_id": id, "host_id": hostID}).Info("Listing deleted")
	return id, nil
}

func validateListing(in db.NewListing) error {
	if strings.TrimSpace(in.Address) == "" {
		return fmt.Errorf("address is required: %w", apperrors.ErrValidation)
	}
	if in.Rate < 0 {
		return fmt.Errorf("rate must not be negative: %w", apperrors.ErrValidation)
	}
	if !in.RateType.Valid() {
		return fmt.Errorf("rate type %q: %w", in.RateType, apperrors.ErrValidation)
	}
	if !in.ApprovalMode.Valid() {
		return fmt.Errorf("approval mode %q: %w", in.ApprovalMode, apperrors.ErrValidation)
	}
	if _, err := utils.ParseTimeOfDay(in.Availability.Start); err != nil {
		return err
	}
	if _, err := utils.ParseTimeOfDay(in.Availability.End); err != nil {
		return err
	}
	return nil
}
