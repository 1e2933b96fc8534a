package service

import (
	"slices"
	"time"

	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/entities"
	"github.com/ValetTech/Valet/internal/repository"
)

// QueryService derives the host and event views. Nothing is cached; every call
// reads the store afresh.
type QueryService struct {
	Store *repository.Store
	Now   func() time.Time
}

func NewQueryService(store *repository.Store) *QueryService {
	return &QueryService{Store: store, Now: time.Now}
}

func (s *QueryService) HostListings(hostID string) []db.Listing {
	return hostListings(s.Store.Listings(), hostID)
}

// HostReservations returns reservations on any of the host's listings, latest start first.
func (s *QueryService) HostReservations(hostID string) []db.Reservation {
	return hostReservations(s.Store.Snapshot(), hostID)
}

func (s *QueryService) HostEventInquiries(hostID string) []db.EventInquiry {
	out := []db.EventInquiry{}
	for _, i := range s.Store.EventInquiries() {
		if i.HostID == hostID {
			out = append(out, i)
		}
	}
	return out
}

func (s *QueryService) EventListings() []db.Listing {
	out := []db.Listing{}
	for _, l := range s.Store.Listings() {
		if l.SuitableForEvents {
			out = append(out, l)
		}
	}
	return out
}

// HostOverview computes every figure from a single snapshot.
func (s *QueryService) HostOverview(hostID string) entities.HostOverview {
	snap := s.Store.Snapshot()
	reservations := hostReservations(snap, hostID)
	pending := 0
	for _, r := range reservations {
		if r.Status == db.ReservationPending {
			pending++
		}
	}
	return entities.HostOverview{
		ActiveListings:       len(hostListings(snap.Listings, hostID)),
		PendingRequests:      pending,
		UpcomingReservations: UpcomingReservations(reservations, s.Now()),
	}
}

// UpcomingReservations counts APPROVED reservations starting strictly after now.
func UpcomingReservations(reservations []db.Reservation, now time.Time) int {
	n := 0
	for _, r := range reservations {
		if r.Status == db.ReservationApproved && r.StartTime.After(now) {
			n++
		}
	}
	return n
}

func hostListings(listings []db.Listing, hostID string) []db.Listing {
	out := []db.Listing{}
	for _, l := range listings {
		if l.HostID == hostID {
			out = append(out, l)
		}
	}
	return out
}

func hostReservations(snap repository.Snapshot, hostID string) []db.Reservation {
	owned := make(map[string]struct{})
	for _, l := range hostListings(snap.Listings, hostID) {
		owned[l.ID] = struct{}{}
	}

	out := []db.Reservation{}
	for _, r := range snap.Reservations {
		if _, ok := owned[r.ListingID]; ok {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b db.Reservation) int {
		return b.StartTime.Compare(a.StartTime)
	})
	return out
}
