package repository

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ValetTech/Valet/internal/db"
	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/google/uuid"
)

const (
	listingPrefix     = "l-"
	reservationPrefix = "r-"
	inquiryPrefix     = "ei-"
)

// Snapshot is a point-in-time copy of every collection, in observable order.
type Snapshot struct {
	Listings       []db.Listing      `json:"listings"`
	Reservations   []db.Reservation  `json:"reservations"`
	EventInquiries []db.EventInquiry `json:"eventInquiries"`
}

// IDGenerator returns a fresh identifier carrying the given prefix.
type IDGenerator func(prefix string) string

func UUIDGenerator(prefix string) string {
	return prefix + uuid.NewString()
}

// Locator assigns a location to a newly created listing.
type Locator interface {
	Locate() db.Location
}

type StoreOption func(*Store)

func WithIDGenerator(gen IDGenerator) StoreOption {
	return func(s *Store) { s.newID = gen }
}

func WithLocator(l Locator) StoreOption {
	return func(s *Store) { s.locator = l }
}

// Store holds listings, reservations and event inquiries. A single lock spans all
// three collections so a cascading delete is never observed half applied.
type Store struct {
	mu           sync.RWMutex
	listings     []db.Listing // newest first
	reservations []db.Reservation
	inquiries    []db.EventInquiry // newest first
	used         map[string]struct{}

	newID   IDGenerator
	locator Locator
}

// NewStore builds a store over a copy of initial. A snapshot with duplicate ids, a
// reservation or inquiry pointing at a listing it does not contain, or an inquiry
// whose hostId differs from its listing's owner is rejected.
func NewStore(initial Snapshot, opts ...StoreOption) (*Store, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	s := &Store{
		listings:     slices.Clone(initial.Listings),
		reservations: slices.Clone(initial.Reservations),
		inquiries:    slices.Clone(initial.EventInquiries),
		used:         make(map[string]struct{}),
		newID:        UUIDGenerator,
		locator:      NewJitterLocator(DefaultOrigin, DefaultSpread, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, l := range s.listings {
		s.used[l.ID] = struct{}{}
	}
	for _, r := range s.reservations {
		s.used[r.ID] = struct{}{}
	}
	for _, i := range s.inquiries {
		s.used[i.ID] = struct{}{}
	}
	return s, nil
}

// Validate checks the referential integrity of the snapshot. Ids must be non-empty and
// unique across all three collections.
func (snap Snapshot) Validate() error {
	seen := make(map[string]struct{})
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s with empty id: %w", kind, apperrors.ErrValidation)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate id %q on %s: %w", id, kind, apperrors.ErrValidation)
		}
		seen[id] = struct{}{}
		return nil
	}

	owners := make(map[string]string, len(snap.Listings))
	for _, l := range snap.Listings {
		if err := claim("listing", l.ID); err != nil {
			return err
		}
		owners[l.ID] = l.HostID
	}
	for _, r := range snap.Reservations {
		if err := claim("reservation", r.ID); err != nil {
			return err
		}
		if _, ok := owners[r.ListingID]; !ok {
			return fmt.Errorf("reservation %q references unknown listing %q: %w", r.ID, r.ListingID, apperrors.ErrValidation)
		}
	}
	for _, i := range snap.EventInquiries {
		if err := claim("event inquiry", i.ID); err != nil {
			return err
		}
		owner, ok := owners[i.ListingID]
		if !ok {
			return fmt.Errorf("event inquiry %q references unknown listing %q: %w", i.ID, i.ListingID, apperrors.ErrValidation)
		}
		if i.HostID != owner {
			return fmt.Errorf("event inquiry %q has hostId %q, listing %q is owned by %q: %w",
				i.ID, i.HostID, i.ListingID, owner, apperrors.ErrValidation)
		}
	}
	return nil
}

// nextID must be called with the write lock held.
func (s *Store) nextID(prefix string) string {
	for {
		id := s.newID(prefix)
		if _, taken := s.used[id]; !taken {
			s.used[id] = struct{}{}
			return id
		}
	}
}

func (s *Store) CreateListing(hostID string, in db.NewListing) db.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing := db.Listing{
		ID:                s.nextID(listingPrefix),
		HostID:            hostID,
		Address:           in.Address,
		Description:       in.Description,
		Rate:              in.Rate,
		RateType:          in.RateType,
		Availability:      in.Availability,
		ApprovalMode:      in.ApprovalMode,
		Location:          s.locator.Locate(),
		SuitableForEvents: in.SuitableForEvents,
	}
	s.listings = slices.Insert(s.listings, 0, listing)
	return listing
}

// DeleteListing removes the listing together with every reservation and inquiry
// that references it. Unknown ids are a no-op.
func (s *Store) DeleteListing(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings = slices.DeleteFunc(s.listings, func(l db.Listing) bool { return l.ID == id })
	s.reservations = slices.DeleteFunc(s.reservations, func(r db.Reservation) bool { return r.ListingID == id })
	s.inquiries = slices.DeleteFunc(s.inquiries, func(i db.EventInquiry) bool { return i.ListingID == id })
	return id
}

// CreateReservation seeds the status from the listing's approval mode as it is right now.
func (s *Store) CreateReservation(driverID string, in db.NewReservation) (db.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.listingIndex(in.ListingID)
	if idx < 0 {
		return db.Reservation{}, fmt.Errorf("listing %q: %w", in.ListingID, apperrors.ErrNotFound)
	}

	status := db.ReservationPending
	if s.listings[idx].ApprovalMode == db.ApprovalAutomatic {
		status = db.ReservationApproved
	}

	res := db.Reservation{
		ID:        s.nextID(reservationPrefix),
		ListingID: in.ListingID,
		DriverID:  driverID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Status:    status,
	}
	s.reservations = append(s.reservations, res)
	return res, nil
}

// UpdateReservationStatus replaces only the status. Any status may follow any other here.
func (s *Store) UpdateReservationStatus(id string, status db.ReservationStatus) (db.Reservation, error) {
	return s.UpdateReservationStatusIf(id, status, nil)
}

// UpdateReservationStatusIf runs guard against the current reservation under the write
// lock and applies the update only if guard returns nil.
func (s *Store) UpdateReservationStatusIf(id string, status db.ReservationStatus, guard func(db.Reservation) error) (db.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reservations {
		if s.reservations[i].ID != id {
			continue
		}
		if guard != nil {
			if err := guard(s.reservations[i]); err != nil {
				return db.Reservation{}, err
			}
		}
		s.reservations[i].Status = status
		return s.reservations[i], nil
	}
	return db.Reservation{}, fmt.Errorf("reservation %q: %w", id, apperrors.ErrNotFound)
}

// UpdateReservationStatusesIf sets status on every listed reservation still present for
// which keep reports true at the time of the write, and returns how many were updated.
// Ids removed by a cascade in the meantime are skipped. A nil keep updates them all.
func (s *Store) UpdateReservationStatusesIf(ids []string, status db.ReservationStatus, keep func(db.Reservation) bool) int {
	if len(ids) == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for i := range s.reservations {
		if !slices.Contains(ids, s.reservations[i].ID) {
			continue
		}
		if keep == nil || keep(s.reservations[i]) {
			s.reservations[i].Status = status
			updated++
		}
	}
	return updated
}

// CreateEventInquiry always starts the inquiry as PENDING, whatever the listing's approval mode.
func (s *Store) CreateEventInquiry(in db.NewEventInquiry) (db.EventInquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.listingIndex(in.ListingID)
	if idx < 0 {
		return db.EventInquiry{}, fmt.Errorf("listing %q: %w", in.ListingID, apperrors.ErrNotFound)
	}

	inquiry := db.EventInquiry{
		ID:                s.nextID(inquiryPrefix),
		ListingID:         in.ListingID,
		HostID:            s.listings[idx].HostID,
		UserName:          in.UserName,
		UserEmail:         in.UserEmail,
		UserPhone:         in.UserPhone,
		EventType:         in.EventType,
		EventDate:         in.EventDate,
		NumberOfAttendees: in.NumberOfAttendees,
		Message:           in.Message,
		Status:            db.InquiryPending,
	}
	s.inquiries = slices.Insert(s.inquiries, 0, inquiry)
	return inquiry, nil
}

func (s *Store) UpdateEventInquiryStatus(id string, status db.EventInquiryStatus) (db.EventInquiry, error) {
	return s.UpdateEventInquiryStatusIf(id, status, nil)
}

func (s *Store) UpdateEventInquiryStatusIf(id string, status db.EventInquiryStatus, guard func(db.EventInquiry) error) (db.EventInquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inquiries {
		if s.inquiries[i].ID != id {
			continue
		}
		if guard != nil {
			if err := guard(s.inquiries[i]); err != nil {
				return db.EventInquiry{}, err
			}
		}
		s.inquiries[i].Status = status
		return s.inquiries[i], nil
	}
	return db.EventInquiry{}, fmt.Errorf("event inquiry %q: %w", id, apperrors.ErrNotFound)
}

func (s *Store) GetListing(id string) (db.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.listingIndex(id); idx >= 0 {
		return s.listings[idx], nil
	}
	return db.Listing{}, fmt.Errorf("listing %q: %w", id, apperrors.ErrNotFound)
}

func (s *Store) GetReservation(id string) (db.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return db.Reservation{}, fmt.Errorf("reservation %q: %w", id, apperrors.ErrNotFound)
}

func (s *Store) GetEventInquiry(id string) (db.EventInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, i := range s.inquiries {
		if i.ID == id {
			return i, nil
		}
	}
	return db.EventInquiry{}, fmt.Errorf("event inquiry %q: %w", id, apperrors.ErrNotFound)
}

func (s *Store) Listings() []db.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.listings)
}

func (s *Store) Reservations() []db.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reservations)
}

func (s *Store) EventInquiries() []db.EventInquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.inquiries)
}

// Snapshot copies all three collections under one read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Listings:       cloneOrEmpty(s.listings),
		Reservations:   cloneOrEmpty(s.reservations),
		EventInquiries: cloneOrEmpty(s.inquiries),
	}
}

func (s *Store) listingIndex(id string) int {
	return slices.IndexFunc(s.listings, func(l db.Listing) bool { return l.ID == id })
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
