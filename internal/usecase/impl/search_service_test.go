package impl

import (
	"context"
	"testing"
	"time"

	"plaza/config"
	"plaza/internal/domain/entity"
	mockUsecase "plaza/internal/mocks/usecase"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchService(t *testing.T) (usecase.SearchUsecase, *mockUsecase.MockGeoUsecase) {
	t.Helper()

	mockGeo := mockUsecase.NewMockGeoUsecase(t)
	service := NewSearchService(SearchServiceParams{
		Config: &config.Config{
			Distance: &config.DistanceConfig{MaxFilterRadiusKm: 50.0},
		},
		Logger: testLogger(),
		Geo:    mockGeo,
	})

	return service, mockGeo
}

func distanceOf(meters int) *entity.DistanceResult {
	return &entity.DistanceResult{
		DistanceMeters: meters,
		Method:         entity.DistanceMethodProvider,
	}
}

func TestSearchService_FilterAndSort_DistanceFilter(t *testing.T) {
	service, _ := newSearchService(t)

	near := usecase.Candidate{ID: uuid.New(), Distance: distanceOf(3_000)}
	far := usecase.Candidate{ID: uuid.New(), Distance: distanceOf(12_000)}
	unknown := usecase.Candidate{ID: uuid.New()}

	results, err := service.FilterAndSort(context.Background(), nil,
		[]usecase.Candidate{near, far, unknown},
		usecase.SearchFilters{MaxDistanceKm: 5},
		usecase.SortByRating,
	)
	require.NoError(t, err)

	ids := candidateIDs(results)
	assert.Contains(t, ids, near.ID)
	assert.NotContains(t, ids, far.ID)
	// Unknown distance never excludes a candidate.
	assert.Contains(t, ids, unknown.ID)
}

func TestSearchService_FilterAndSort_DistanceFilterCeilingIsNoOp(t *testing.T) {
	service, _ := newSearchService(t)

	far := usecase.Candidate{ID: uuid.New(), Distance: distanceOf(120_000)}

	results, err := service.FilterAndSort(context.Background(), nil,
		[]usecase.Candidate{far},
		usecase.SearchFilters{MaxDistanceKm: 50},
		usecase.SortByRating,
	)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchService_FilterAndSort_RatingFloor(t *testing.T) {
	service, _ := newSearchService(t)

	rated := usecase.Candidate{ID: uuid.New(), RatingAverage: 4.2, ReviewCount: 7}
	lowRated := usecase.Candidate{ID: uuid.New(), RatingAverage: 3.1, ReviewCount: 4}
	unrated := usecase.Candidate{ID: uuid.New()}

	results, err := service.FilterAndSort(context.Background(), nil,
		[]usecase.Candidate{rated, lowRated, unrated},
		usecase.SearchFilters{MinRating: 4.0},
		usecase.SortByRating,
	)
	require.NoError(t, err)

	ids := candidateIDs(results)
	assert.Contains(t, ids, rated.ID)
	assert.NotContains(t, ids, lowRated.ID)
	// A zero-review candidate cannot satisfy a positive rating floor.
	assert.NotContains(t, ids, unrated.ID)
}

func TestSearchService_FilterAndSort_RaisingRatingFloorNeverAdds(t *testing.T) {
	service, _ := newSearchService(t)

	candidates := []usecase.Candidate{
		{ID: uuid.New(), RatingAverage: 4.8, ReviewCount: 12},
		{ID: uuid.New(), RatingAverage: 3.9, ReviewCount: 3},
		{ID: uuid.New(), RatingAverage: 2.5, ReviewCount: 1},
		{ID: uuid.New()},
	}

	loose, err := service.FilterAndSort(context.Background(), nil, candidates,
		usecase.SearchFilters{MinRating: 3.0}, usecase.SortByRating)
	require.NoError(t, err)

	strict, err := service.FilterAndSort(context.Background(), nil, candidates,
		usecase.SearchFilters{MinRating: 4.0}, usecase.SortByRating)
	require.NoError(t, err)

	looseIDs := candidateIDs(loose)
	for _, id := range candidateIDs(strict) {
		assert.Contains(t, looseIDs, id)
	}
	assert.LessOrEqual(t, len(strict), len(loose))
}

func TestSearchService_FilterAndSort_PriceAndCityFilters(t *testing.T) {
	service, _ := newSearchService(t)

	match := usecase.Candidate{ID: uuid.New(), Price: 120, City: "Berlin"}
	tooCheap := usecase.Candidate{ID: uuid.New(), Price: 20, City: "Berlin"}
	wrongCity := usecase.Candidate{ID: uuid.New(), Price: 150, City: "Hamburg"}

	results, err := service.FilterAndSort(context.Background(), nil,
		[]usecase.Candidate{match, tooCheap, wrongCity},
		usecase.SearchFilters{MinPrice: 50, MaxPrice: 200, City: "berlin"},
		usecase.SortByRating,
	)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, match.ID, results[0].ID)
}

func TestSearchService_FilterAndSort_SortByDistanceUnknownLast(t *testing.T) {
	service, mockGeo := newSearchService(t)

	origin := &entity.Location{Lat: 52.52, Lng: 13.405}
	far := usecase.Candidate{ID: uuid.New(), Location: &entity.Location{Lat: 52.6, Lng: 13.5}}
	near := usecase.Candidate{ID: uuid.New(), Location: &entity.Location{Lat: 52.53, Lng: 13.41}}
	unknown := usecase.Candidate{ID: uuid.New()}

	mockGeo.EXPECT().
		DistanceBatch(mock.Anything, *origin, mock.AnythingOfType("[]usecase.BatchTarget")).
		Return(map[uuid.UUID]*entity.DistanceResult{
			far.ID:  distanceOf(9_000),
			near.ID: distanceOf(1_200),
		}, nil)

	results, err := service.FilterAndSort(context.Background(), origin,
		[]usecase.Candidate{unknown, far, near},
		usecase.SearchFilters{},
		usecase.SortByDistance,
	)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, near.ID, results[0].ID)
	assert.Equal(t, far.ID, results[1].ID)
	assert.Equal(t, unknown.ID, results[2].ID)
}

func TestSearchService_FilterAndSort_DistanceSortWithoutOriginFallsBackToRating(t *testing.T) {
	service, _ := newSearchService(t)

	best := usecase.Candidate{ID: uuid.New(), RatingAverage: 4.9, ReviewCount: 20}
	worst := usecase.Candidate{ID: uuid.New(), RatingAverage: 3.0, ReviewCount: 5}

	results, err := service.FilterAndSort(context.Background(), nil,
		[]usecase.Candidate{worst, best},
		usecase.SearchFilters{},
		usecase.SortByDistance,
	)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, best.ID, results[0].ID)
}

func TestSearchService_FilterAndSort_RatingTieBrokenByReviewCount(t *testing.T) {
	service, _ := newSearchService(t)

	seasoned := usecase.Candidate{ID: uuid.New(), RatingAverage: 4.5, ReviewCount: 40}
	fresh := usecase.Candidate{ID: uuid.New(), RatingAverage: 4.5, ReviewCount: 2}

	results, err := service.FilterAndSort(context.Background(), nil,
		[]usecase.Candidate{fresh, seasoned},
		usecase.SearchFilters{},
		usecase.SortByRating,
	)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, seasoned.ID, results[0].ID)
}

func TestSearchService_FilterAndSort_StableOnFullTies(t *testing.T) {
	service, _ := newSearchService(t)

	first := usecase.Candidate{ID: uuid.New(), RatingAverage: 4.0, ReviewCount: 10}
	second := usecase.Candidate{ID: uuid.New(), RatingAverage: 4.0, ReviewCount: 10}

	results, err := service.FilterAndSort(context.Background(), nil,
		[]usecase.Candidate{first, second},
		usecase.SearchFilters{},
		usecase.SortByRating,
	)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, first.ID, results[0].ID)
	assert.Equal(t, second.ID, results[1].ID)
}

func TestSearchService_FilterAndSort_SortByNewest(t *testing.T) {
	service, _ := newSearchService(t)

	now := time.Now()
	older := usecase.Candidate{ID: uuid.New(), CreatedAt: now.Add(-2 * time.Hour)}
	newer := usecase.Candidate{ID: uuid.New(), CreatedAt: now}

	results, err := service.FilterAndSort(context.Background(), nil,
		[]usecase.Candidate{older, newer},
		usecase.SearchFilters{},
		usecase.SortByNewest,
	)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, newer.ID, results[0].ID)
}

func TestSearchService_FilterAndSort_BatchFailureLeavesDistancesUnknown(t *testing.T) {
	service, mockGeo := newSearchService(t)

	origin := &entity.Location{Lat: 52.52, Lng: 13.405}
	candidate := usecase.Candidate{
		ID:       uuid.New(),
		Location: &entity.Location{Lat: 52.53, Lng: 13.41},
	}

	mockGeo.EXPECT().
		DistanceBatch(mock.Anything, *origin, mock.AnythingOfType("[]usecase.BatchTarget")).
		Return(nil, errors.New("batch canceled"))

	results, err := service.FilterAndSort(context.Background(), origin,
		[]usecase.Candidate{candidate},
		usecase.SearchFilters{},
		usecase.SortByDistance,
	)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Nil(t, results[0].Distance)
}

func TestSearchService_FilterAndSort_DoesNotMutateInput(t *testing.T) {
	service, _ := newSearchService(t)

	first := usecase.Candidate{ID: uuid.New(), RatingAverage: 1.0}
	second := usecase.Candidate{ID: uuid.New(), RatingAverage: 5.0, ReviewCount: 3}
	input := []usecase.Candidate{first, second}

	_, err := service.FilterAndSort(context.Background(), nil, input,
		usecase.SearchFilters{}, usecase.SortByRating)
	require.NoError(t, err)

	assert.Equal(t, first.ID, input[0].ID)
	assert.Equal(t, second.ID, input[1].ID)
}

func candidateIDs(candidates []usecase.Candidate) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		ids = append(ids, candidate.ID)
	}

	return ids
}
