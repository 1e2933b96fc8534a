package repository

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSnapshotFile reads a JSON snapshot in the GET /api/data shape and checks its integrity.
func LoadSnapshotFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	if err := snap.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return snap, nil
}
