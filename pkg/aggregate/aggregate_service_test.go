package aggregate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAggregateRepo struct {
	dishCounts   map[string]int64
	likeCounts   map[string]int64
	dishWrites   map[string]int64
	usefulWrites map[string]int64
}

func newFakeAggregateRepo() *fakeAggregateRepo {
	return &fakeAggregateRepo{
		dishCounts:   map[string]int64{},
		likeCounts:   map[string]int64{},
		dishWrites:   map[string]int64{},
		usefulWrites: map[string]int64{},
	}
}

func (f *fakeAggregateRepo) CountActiveDishRecommendations(ctx context.Context, dishID string) (int64, error) {
	return f.dishCounts[dishID], nil
}

func (f *fakeAggregateRepo) SetDishRecommendedCount(ctx context.Context, dishID string, count int64) error {
	f.dishWrites[dishID] = count
	return nil
}

func (f *fakeAggregateRepo) CountActiveTasteLikes(ctx context.Context, tasteID string) (int64, error) {
	return f.likeCounts[tasteID], nil
}

func (f *fakeAggregateRepo) SetTasteUsefulTotal(ctx context.Context, tasteID string, count int64) error {
	f.usefulWrites[tasteID] = count
	return nil
}

func TestRecountDishRecommendations(t *testing.T) {
	repo := newFakeAggregateRepo()
	repo.dishCounts["dish-1"] = 7
	service := NewAggregateService(repo)

	require.NoError(t, service.RecountDishRecommendations(context.Background(), "dish-1"))
	assert.Equal(t, int64(7), repo.dishWrites["dish-1"])
}

func TestRecountDishRecommendationsIsIdempotent(t *testing.T) {
	repo := newFakeAggregateRepo()
	repo.dishCounts["dish-1"] = 3
	service := NewAggregateService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, service.RecountDishRecommendations(ctx, "dish-1"))
	}
	assert.Equal(t, int64(3), repo.dishWrites["dish-1"])
}

func TestRecountTasteUseful(t *testing.T) {
	repo := newFakeAggregateRepo()
	repo.likeCounts["taste-1"] = 2
	service := NewAggregateService(repo)

	require.NoError(t, service.RecountTasteUseful(context.Background(), "taste-1"))
	assert.Equal(t, int64(2), repo.usefulWrites["taste-1"])
}

func TestRecountUnknownDishWritesZero(t *testing.T) {
	repo := newFakeAggregateRepo()
	service := NewAggregateService(repo)

	require.NoError(t, service.RecountDishRecommendations(context.Background(), "dish-x"))
	assert.Equal(t, int64(0), repo.dishWrites["dish-x"])
}
