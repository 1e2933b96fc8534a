package api

import "github.com/ValetTech/Valet/internal/repository"

// DataResponse is the full-state payload served by GET /api/data.
type DataResponse = repository.Snapshot

type DeleteResponse struct {
	ID string `json:"id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
