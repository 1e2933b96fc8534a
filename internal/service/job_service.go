package service

import (
	"time"

	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/repository"
	"github.com/sirupsen/logrus"
)

type JobService struct {
	Store *repository.Store
}

func NewJobService(store *repository.Store) *JobService {
	return &JobService{Store: store}
}

// CompleteFinishedReservations marks APPROVED reservations whose end time is before now
// as COMPLETED and returns how many were updated.
func (s *JobService) CompleteFinishedReservations(now time.Time) int {
	logrus.Debug("Cron Job: checking for reservations to complete")

	var ids []string
	for _, r := range s.Store.Reservations() {
		if r.Status == db.ReservationApproved && r.EndTime.Before(now) {
			ids = append(ids, r.ID)
		}
	}
	if len(ids) == 0 {
		logrus.Debug("Cron Job: no approved reservations past their end time")
		return 0
	}

	updated := s.Store.UpdateReservationStatusesIf(ids, db.ReservationCompleted, func(r db.Reservation) bool {
		return r.Status == db.ReservationApproved
	})
	logrus.WithFields(logrus.Fields{
		"found":   len(ids),
		"updated": updated,
	}).Info("Cron Job: reservations marked as completed")
	return updated
}
