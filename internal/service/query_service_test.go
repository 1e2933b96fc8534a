package service

import (
	"testing"
	"time"

	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryService_HostViews(t *testing.T) {
	store := newStore(t)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	mine := store.CreateListing("h1", validListing(db.ApprovalAutomatic))
	manual := store.CreateListing("h1", validListing(db.ApprovalManual))
	eventSpot := validListing(db.ApprovalManual)
	eventSpot.SuitableForEvents = true
	theirs := store.CreateListing("h2", eventSpot)

	past := mustReserve(t, store, mine.ID, now.Add(-48*time.Hour), now.Add(-46*time.Hour))
	future := mustReserve(t, store, mine.ID, now.Add(24*time.Hour), now.Add(26*time.Hour))
	pending := mustReserve(t, store, manual.ID, now.Add(72*time.Hour), now.Add(73*time.Hour))
	mustReserve(t, store, theirs.ID, now.Add(time.Hour), now.Add(2*time.Hour))

	_, err := store.CreateEventInquiry(validInquiry(theirs.ID))
	require.NoError(t, err)
	mineInquiry, err := store.CreateEventInquiry(validInquiry(mine.ID))
	require.NoError(t, err)

	svc := NewQueryService(store)
	svc.Now = func() time.Time { return now }

	listings := svc.HostListings("h1")
	require.Len(t, listings, 2)
	for _, l := range listings {
		assert.Equal(t, "h1", l.HostID)
	}

	reservations := svc.HostReservations("h1")
	require.Len(t, reservations, 3)
	assert.Equal(t, []string{pending.ID, future.ID, past.ID},
		[]string{reservations[0].ID, reservations[1].ID, reservations[2].ID}, "latest start first")

	inquiries := svc.HostEventInquiries("h1")
	require.Len(t, inquiries, 1)
	assert.Equal(t, mineInquiry.ID, inquiries[0].ID)

	events := svc.EventListings()
	require.Len(t, events, 1)
	assert.Equal(t, theirs.ID, events[0].ID)

	assert.Equal(t, entities.HostOverview{
		ActiveListings:       2,
		PendingRequests:      1,
		UpcomingReservations: 1,
	}, svc.HostOverview("h1"))
}

func TestQueryService_EmptyViewsAreNotNil(t *testing.T) {
	svc := NewQueryService(newStore(t))
	assert.NotNil(t, svc.HostListings("nobody"))
	assert.NotNil(t, svc.HostReservations("nobody"))
	assert.NotNil(t, svc.HostEventInquiries("nobody"))
	assert.NotNil(t, svc.EventListings())
}

func TestUpcomingReservations(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	reservations := []db.Reservation{
		{Status: db.ReservationApproved, StartTime: now.Add(time.Minute)},
		{Status: db.ReservationApproved, StartTime: now},
		{Status: db.ReservationApproved, StartTime: now.Add(-time.Hour)},
		{Status: db.ReservationPending, StartTime: now.Add(time.Hour)},
		{Status: db.ReservationCompleted, StartTime: now.Add(time.Hour)},
	}
	assert.Equal(t, 1, UpcomingReservations(reservations, now))
	assert.Equal(t, 0, UpcomingReservations(nil, now))
}
