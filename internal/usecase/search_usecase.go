package usecase

import (
	"context"
	"time"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// SortKey selects the ordering of a filtered candidate list.
type SortKey string

const (
	SortByDistance    SortKey = "distance"
	SortByRating      SortKey = "rating"
	SortByReviewCount SortKey = "reviewCount"
	SortByNewest      SortKey = "newest"
)

// MaxDistanceFilterKm is the ceiling at or above which a distance
// filter is treated as "no filter".
const MaxDistanceFilterKm = 50.0

// SearchFilters narrows a candidate list before sorting. Zero values
// mean "no filter" for every field.
type SearchFilters struct {
	// MaxDistanceKm excludes candidates with a resolved distance beyond
	// it. Candidates with unknown distance always pass. Values at or
	// above MaxDistanceFilterKm disable the filter entirely.
	MaxDistanceKm float64

	// MinRating excludes candidates rated below it. A positive floor
	// also excludes candidates with zero reviews.
	MinRating float64

	MinPrice  float64
	MaxPrice  float64
	City      string
	Condition string
}

// Candidate is the unit LocationFilterSort operates on, a projection of
// a listing or provider carrying just the fields filters and sorts need.
type Candidate struct {
	ID            uuid.UUID
	Location      *entity.Location
	Price         float64
	RatingAverage float64
	ReviewCount   int
	City          string
	Condition     string
	CreatedAt     time.Time

	// Distance is populated by the search use case when an origin is
	// available. Nil means "unknown"; such candidates sort last under
	// the distance key but are never excluded.
	Distance *entity.DistanceResult
}

// SearchUsecase defines the interface for candidate filtering and ranking
type SearchUsecase interface {
	// FilterAndSort resolves distances against origin (when given),
	// applies the filters and returns the candidates ranked by sortKey.
	// Filtering always precedes sorting; an absent origin degrades the
	// distance sort to rating order instead of failing.
	FilterAndSort(ctx context.Context, origin *entity.Location, candidates []Candidate, filters SearchFilters, sortKey SortKey) ([]Candidate, error)
}

// ListingCandidates projects marketplace listings into search candidates.
func ListingCandidates(listings []*entity.MarketplaceListing) []Candidate {
	candidates := make([]Candidate, 0, len(listings))
	for _, listing := range listings {
		candidates = append(candidates, Candidate{
			ID:            listing.ID,
			Location:      listing.Location,
			Price:         listing.Price,
			RatingAverage: listing.RatingAverage,
			ReviewCount:   listing.ReviewCount,
			City:          listing.City,
			Condition:     listing.Condition,
			CreatedAt:     listing.CreatedAt,
		})
	}

	return candidates
}

// ProviderCandidates projects service providers into search candidates.
func ProviderCandidates(providers []*entity.ServiceProvider) []Candidate {
	candidates := make([]Candidate, 0, len(providers))
	for _, provider := range providers {
		var price float64
		if provider.StartingPrice != nil {
			price = *provider.StartingPrice
		}

		candidates = append(candidates, Candidate{
			ID:            provider.ID,
			Location:      provider.Location,
			Price:         price,
			RatingAverage: provider.RatingAverage,
			ReviewCount:   provider.ReviewCount,
			City:          provider.City,
			CreatedAt:     provider.CreatedAt,
		})
	}

	return candidates
}
