package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/entities"
	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/ValetTech/Valet/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWaitlistRepo struct{}

func (failingWaitlistRepo) Append(context.Context, *db.WaitlistEntry) error {
	return errors.New("connection reset")
}

type recordingWaitlistRepo struct {
	entries []db.WaitlistEntry
}

func (r *recordingWaitlistRepo) Append(_ context.Context, entry *db.WaitlistEntry) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func TestWaitlistService_Join(t *testing.T) {
	repo := &recordingWaitlistRepo{}
	notifier := &notifierMock{}
	svc := NewWaitlistService(repo, syncSender(notifier))
	joined := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return joined }

	ack, err := svc.Join(context.Background(), db.RoleEventPlanner, " plan@example.com ", map[string]string{"events": "monthly"})
	require.NoError(t, err)
	assert.Equal(t, entities.WaitlistAck{Email: "plan@example.com", Role: "EVENT_PLANNER"}, ack)

	entries := repo.entries
	require.Len(t, entries, 1)
	assert.Equal(t, joined, entries[0].CreatedAt)
	assert.Equal(t, "monthly", entries[0].Answers["events"])

	require.Len(t, notifier.emails, 1)
	assert.Equal(t, "plan@example.com", notifier.emails[0].To)
	assert.Contains(t, notifier.emails[0].Plain, "an event planner")
}

func TestWaitlistService_Join_Errors(t *testing.T) {
	svc := NewWaitlistService(repository.NewMemoryWaitlistRepository(), nil)

	_, err := svc.Join(context.Background(), db.RoleHost, "", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Join(context.Background(), db.RoleHost, "nope", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Join(context.Background(), "ADMIN", "a@example.com", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = NewWaitlistService(failingWaitlistRepo{}, nil).Join(context.Background(), db.RoleHost, "a@example.com", nil)
	assert.ErrorContains(t, err, "connection reset")
}
