package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/repository"
	"github.com/stretchr/testify/require"
)

type fixedLocator struct{}

func (fixedLocator) Locate() db.Location { return repository.DefaultOrigin }

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	n := 0
	s, err := repository.NewStore(repository.Snapshot{},
		repository.WithIDGenerator(func(prefix string) string {
			n++
			return fmt.Sprintf("%s%d", prefix, n)
		}),
		repository.WithLocator(fixedLocator{}),
	)
	require.NoError(t, err)
	return s
}

func validListing(mode db.ApprovalMode) db.NewListing {
	return db.NewListing{
		Address:      "500 Howard St",
		Description:  "Covered garage",
		Rate:         8,
		RateType:     db.RateHourly,
		Availability: db.Availability{Start: "08:00", End: "20:00"},
		ApprovalMode: mode,
	}
}

func validInquiry(listingID string) db.NewEventInquiry {
	return db.NewEventInquiry{
		ListingID:         listingID,
		UserName:          "Sam Lee",
		UserEmail:         "sam@example.com",
		UserPhone:         "+15555550100",
		EventType:         "Conference",
		EventDate:         time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		NumberOfAttendees: 120,
		Message:           "Need 30 spots",
	}
}

func mustReserve(t *testing.T, s *repository.Store, listingID string, start, end time.Time) db.Reservation {
	t.Helper()
	r, err := s.CreateReservation("d1", db.NewReservation{ListingID: listingID, StartTime: start, EndTime: end})
	require.NoError(t, err)
	return r
}

type sentEmail struct {
	To, Name, Subject, Plain, HTML string
}

type sentSMS struct {
	To, Body string
}

// notifierMock records every message; emailErr is returned from SendEmail when set.
type notifierMock struct {
	mu       sync.Mutex
	emails   []sentEmail
	sms      []sentSMS
	emailErr error
}

func (m *notifierMock) SendEmail(to, name, subject, plain, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails = append(m.emails, sentEmail{to, name, subject, plain, html})
	return m.emailErr
}

func (m *notifierMock) SendSMS(to, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sms = append(m.sms, sentSMS{to, body})
	return nil
}

// syncSender delivers on the calling goroutine.
func syncSender(n Notifier) *SenderService {
	return &SenderService{Notifier: n, async: func(f func()) { f() }}
}
