package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ValetTech/Valet/internal/db"
	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryWaitlistRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWaitlistRepository()

	first := &db.WaitlistEntry{Role: db.RoleHost, Email: "a@example.com"}
	second := &db.WaitlistEntry{Role: db.RoleDriver, Email: "b@example.com", Answers: map[string]string{"city": "SF"}}
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	entries := repo.(*memoryWaitlistRepository).entries
	require.Len(t, entries, 2)
	assert.Equal(t, "a@example.com", entries[0].Email)
	assert.Equal(t, "SF", entries[1].Answers["city"])
}

func TestLoadSnapshotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"listings": [{"id": "l-1", "hostId": "h1", "address": "9 Pine St", "approvalMode": "AUTOMATIC"}],
		"reservations": [],
		"eventInquiries": []
	}`), 0o600))

	snap, err := LoadSnapshotFile(path)
	require.NoError(t, err)
	require.Len(t, snap.Listings, 1)
	assert.Equal(t, db.ApprovalAutomatic, snap.Listings[0].ApprovalMode)

	_, err = LoadSnapshotFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadSnapshotFile_RejectsOrphans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"listings": [{"id": "l-1", "hostId": "h1"}],
		"reservations": [{"id": "r-1", "listingId": "l-gone", "status": "PENDING"}],
		"eventInquiries": []
	}`), 0o600))

	_, err := LoadSnapshotFile(path)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.ErrorContains(t, err, "l-gone")
}
