package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"plaza/config"
	"plaza/internal/domain/entity"
	"plaza/internal/usecase"

	"go.uber.org/fx"
)

type searchService struct {
	geo    usecase.GeoUsecase
	logger *slog.Logger

	// Distance filters at or above this many kilometers are no-ops.
	filterCeilingKm float64
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Geo    usecase.GeoUsecase
}

// NewSearchService creates a new candidate filtering and ranking service instance
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	filterCeilingKm := usecase.MaxDistanceFilterKm
	if params.Config.Distance != nil && params.Config.Distance.MaxFilterRadiusKm > 0 {
		filterCeilingKm = params.Config.Distance.MaxFilterRadiusKm
	}

	return &searchService{
		geo:             params.Geo,
		logger:          params.Logger,
		filterCeilingKm: filterCeilingKm,
	}
}

// FilterAndSort resolves distances, applies the filters and ranks the
// candidates. Filtering always precedes sorting, so a sort can never
// resurrect a filtered-out candidate.
func (s *searchService) FilterAndSort(ctx context.Context, origin *entity.Location, candidates []usecase.Candidate, filters usecase.SearchFilters, sortKey usecase.SortKey) ([]usecase.Candidate, error) {
	working := make([]usecase.Candidate, len(candidates))
	copy(working, candidates)

	s.resolveDistances(ctx, origin, working)

	filtered := s.applyFilters(working, filters)
	s.sortCandidates(filtered, origin, sortKey)

	return filtered, nil
}

// resolveDistances annotates candidates with distances from origin.
// Failures degrade to unknown distance; they never drop a candidate.
func (s *searchService) resolveDistances(ctx context.Context, origin *entity.Location, candidates []usecase.Candidate) {
	if origin == nil || len(candidates) == 0 {
		return
	}

	targets := make([]usecase.BatchTarget, 0, len(candidates))
	for _, candidate := range candidates {
		targets = append(targets, usecase.BatchTarget{
			ID:       candidate.ID,
			Location: candidate.Location,
		})
	}

	results, err := s.geo.DistanceBatch(ctx, *origin, targets)
	if err != nil {
		s.logger.Warn("batch distance computation failed, distances left unknown",
			slog.Any("error", err),
		)

		return
	}

	for idx := range candidates {
		candidates[idx].Distance = results[candidates[idx].ID]
	}
}

func (s *searchService) applyFilters(candidates []usecase.Candidate, filters usecase.SearchFilters) []usecase.Candidate {
	filtered := make([]usecase.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if s.passesFilters(candidate, filters) {
			filtered = append(filtered, candidate)
		}
	}

	return filtered
}

func (s *searchService) passesFilters(candidate usecase.Candidate, filters usecase.SearchFilters) bool {
	// Unknown distance never excludes; the candidate just loses its badge.
	if filters.MaxDistanceKm > 0 && filters.MaxDistanceKm < s.filterCeilingKm &&
		candidate.Distance != nil &&
		float64(candidate.Distance.DistanceMeters) > filters.MaxDistanceKm*1000 {
		return false
	}

	// A zero-review candidate has no signal and cannot satisfy a
	// positive rating floor.
	if filters.MinRating > 0 &&
		(candidate.ReviewCount == 0 || candidate.RatingAverage < filters.MinRating) {
		return false
	}

	if filters.MinPrice > 0 && candidate.Price < filters.MinPrice {
		return false
	}

	if filters.MaxPrice > 0 && candidate.Price > filters.MaxPrice {
		return false
	}

	if filters.City != "" && !strings.EqualFold(candidate.City, filters.City) {
		return false
	}

	if filters.Condition != "" && !strings.EqualFold(candidate.Condition, filters.Condition) {
		return false
	}

	return true
}

// sortCandidates orders the filtered set in place. The sort is stable,
// so unbroken ties keep their incoming order.
func (s *searchService) sortCandidates(candidates []usecase.Candidate, origin *entity.Location, sortKey usecase.SortKey) {
	// Without an origin the distance sort degrades to rating order.
	if sortKey == usecase.SortByDistance && origin == nil {
		sortKey = usecase.SortByRating
	}

	switch sortKey {
	case usecase.SortByDistance:
		sort.SliceStable(candidates, func(i, j int) bool {
			return lessByDistance(candidates[i], candidates[j])
		})
	case usecase.SortByRating:
		sort.SliceStable(candidates, func(i, j int) bool {
			return lessByRating(candidates[i], candidates[j])
		})
	case usecase.SortByReviewCount:
		sort.SliceStable(candidates, func(i, j int) bool {
			return lessByReviewCount(candidates[i], candidates[j])
		})
	case usecase.SortByNewest:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
		})
	}
}

// lessByDistance orders resolved distances ascending; candidates with
// unknown distance sort last.
func lessByDistance(a, b usecase.Candidate) bool {
	if a.Distance == nil {
		return false
	}
	if b.Distance == nil {
		return true
	}

	return a.Distance.DistanceMeters < b.Distance.DistanceMeters
}

// lessByRating orders rating descending, breaking ties on review count.
func lessByRating(a, b usecase.Candidate) bool {
	if a.RatingAverage != b.RatingAverage {
		return a.RatingAverage > b.RatingAverage
	}

	return a.ReviewCount > b.ReviewCount
}

// lessByReviewCount orders review count descending, breaking ties on rating.
func lessByReviewCount(a, b usecase.Candidate) bool {
	if a.ReviewCount != b.ReviewCount {
		return a.ReviewCount > b.ReviewCount
	}

	return a.RatingAverage > b.RatingAverage
}
