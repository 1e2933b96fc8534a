package service

import (
	"fmt"

	"github.com/ValetTech/Valet/internal/db"
	apperrors "github.com/ValetTech/Valet/internal/errors"
)

var reservationTransitions = map[db.ReservationStatus][]db.ReservationStatus{
	db.ReservationPending:  {db.ReservationApproved, db.ReservationRejected},
	db.ReservationApproved: {db.ReservationCompleted},
}

var inquiryTransitions = map[db.EventInquiryStatus][]db.EventInquiryStatus{
	db.InquiryPending:   {db.InquiryContacted, db.InquiryRejected},
	db.InquiryContacted: {db.InquiryRejected},
}

// TransitionPolicy decides whether a status change is allowed. With Strict off every
// change is accepted; with it on only the transitions in the tables above are.
// Re-applying the current status is always accepted.
type TransitionPolicy struct {
	Strict bool
}

func (p TransitionPolicy) CheckReservation(from, to db.ReservationStatus) error {
	if !p.Strict || from == to {
		return nil
	}
	for _, allowed := range reservationTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("reservation %s -> %s: %w", from, to, apperrors.ErrIllegalTransition)
}

func (p TransitionPolicy) CheckInquiry(from, to db.EventInquiryStatus) error {
	if !p.Strict || from == to {
		return nil
	}
	for _, allowed := range inquiryTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("event inquiry %s -> %s: %w", from, to, apperrors.ErrIllegalTransition)
}
