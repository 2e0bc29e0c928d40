package repository

import (
	"context"
	"testing"

	"eventagency/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarRepository_FeaturesSurviveStorage(t *testing.T) {
	db := testDB(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	car := &domain.Car{
		Name:        "Sprinter VIP",
		Brand:       "Mercedes-Benz",
		Seats:       16,
		PricePerDay: 60000,
		Features:    []string{"wifi", "minibar"},
		Available:   true,
	}
	require.NoError(t, repo.Create(ctx, car))

	got, err := repo.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"wifi", "minibar"}, got.Features)
}

func TestCarRepository_AvailableOnlyFilter(t *testing.T) {
	db := testDB(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Car{Name: "Camry 70", Available: true}))
	require.NoError(t, repo.Create(ctx, &domain.Car{Name: "In Service", Available: false}))

	cars, err := repo.GetAll(ctx, CarFilters{AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Camry 70", cars[0].Name)

	all, err := repo.GetAll(ctx, CarFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
