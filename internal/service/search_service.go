package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/entities"
	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/sirupsen/logrus"
)

// Searcher asks an external provider for parking near a point.
type Searcher interface {
	Search(ctx context.Context, at db.Location, query string) (*entities.SearchResult, error)
}

// SearchCache is satisfied by repository.SearchCacheRepository. Get reports a miss as (nil, nil).
type SearchCache interface {
	Get(ctx context.Context, key string) (*entities.SearchResult, error)
	Set(ctx context.Context, key string, result *entities.SearchResult) error
}

type SearchService struct {
	Provider Searcher
	Cache    SearchCache // optional
	Timeout  time.Duration
}

func NewSearchService(provider Searcher, cache SearchCache, timeout time.Duration) *SearchService {
	return &SearchService{Provider: provider, Cache: cache, Timeout: timeout}
}

// FindNearby runs a single provider call bounded by Timeout. Results are served from
// and written to the cache when one is configured; empty results are not written.
// Failures are never retried.
func (s *SearchService) FindNearby(ctx context.Context, at db.Location, query string) (entities.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return entities.SearchResult{}, fmt.Errorf("query is required: %w", apperrors.ErrValidation)
	}
	if at.Latitude < -90 || at.Latitude > 90 || at.Longitude < -180 || at.Longitude > 180 {
		return entities.SearchResult{}, fmt.Errorf("coordinates out of range: %w", apperrors.ErrValidation)
	}

	key := searchKey(at, query)
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key)
		if err != nil {
			logrus.WithError(err).Warn("Search cache read failed")
		} else if cached != nil {
			return *cached, nil
		}
	}

	callCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	result, err := s.Provider.Search(callCtx, at, query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			logrus.WithError(err).Warn("Nearby search timed out")
			return entities.SearchResult{}, fmt.Errorf("nearby search: %w", apperrors.ErrSearchTimeout)
		}
		logrus.WithError(err).Error("Nearby search failed")
		return entities.SearchResult{}, fmt.Errorf("nearby search: %w", apperrors.ErrExternalService)
	}
	if result == nil {
		result = &entities.SearchResult{}
	}
	if result.Locations == nil {
		result.Locations = []entities.SearchLocation{}
	}

	// An empty answer usually means a blocked or degraded prompt, so it is not kept.
	if s.Cache != nil && !result.Empty() {
		if err := s.Cache.Set(ctx, key, result); err != nil {
			logrus.WithError(err).Warn("Search cache write failed")
		}
	}
	return *result, nil
}

func searchKey(at db.Location, query string) string {
	return fmt.Sprintf("%.4f:%.4f:%s", at.Latitude, at.Longitude, query)
}
