package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	apperrors "github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase/dto"
)

func newPlaceUseCase(places *MockPlaceRepository, cache *MockCacheRepository) *usecase.PlaceUseCase {
	return usecase.NewPlaceUseCase(places, cache, zap.NewNop(), 5*time.Minute)
}

func TestPlaceUseCase_Search(t *testing.T) {
	ctx := context.Background()

	catalog := []*domain.Place{
		{ID: 1, Name: "Copacabana Palace", City: ptrString("Rio de Janeiro"), Type: ptrString("hotel")},
		{ID: 2, Name: "Confeitaria Colombo", City: ptrString("Rio de Janeiro"), Type: ptrString("restaurant")},
	}

	t.Run("cache miss queries and stores the result", func(t *testing.T) {
		mockPlaces := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newPlaceUseCase(mockPlaces, mockCache)

		mockCache.On("Get", ctx, "places:search:rio de janeiro:hotel").Return(nil, nil)
		mockPlaces.On("Search", ctx, "Rio de Janeiro", []string{"hotel"}).Return(catalog[:1], nil)
		mockCache.On("Set", ctx, "places:search:rio de janeiro:hotel", mock.Anything, 5*time.Minute).Return(nil)

		result, err := uc.Search(ctx, dto.SearchPlacesRequest{Destination: "Rio de Janeiro", Type: "hotel"})

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "Copacabana Palace", result[0].Name)
		mockCache.AssertCalled(t, "Set", ctx, "places:search:rio de janeiro:hotel", mock.Anything, 5*time.Minute)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockPlaces := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newPlaceUseCase(mockPlaces, mockCache)

		cached, _ := json.Marshal(dto.NewPlaceResponses(catalog))
		mockCache.On("Get", ctx, "places:search:rio:").Return(cached, nil)

		result, err := uc.Search(ctx, dto.SearchPlacesRequest{Destination: "Rio"})

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		mockPlaces.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no filters returns the whole catalog", func(t *testing.T) {
		mockPlaces := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newPlaceUseCase(mockPlaces, mockCache)

		mockCache.On("Get", ctx, "places:search::").Return(nil, nil)
		mockPlaces.On("Search", ctx, "", []string(nil)).Return(catalog, nil)
		mockCache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := uc.Search(ctx, dto.SearchPlacesRequest{})

		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("unknown type tag fails validation", func(t *testing.T) {
		mockPlaces := &MockPlaceRepository{}
		uc := newPlaceUseCase(mockPlaces, &MockCacheRepository{})

		_, err := uc.Search(ctx, dto.SearchPlacesRequest{Type: "discotheque"})

		appErr, ok := err.(*apperrors.AppError)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrValidation.Code, appErr.Code)
		mockPlaces.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPlaceUseCase_Favorites(t *testing.T) {
	ctx := context.Background()

	t.Run("favoriting checks the place exists first", func(t *testing.T) {
		mockPlaces := &MockPlaceRepository{}
		uc := newPlaceUseCase(mockPlaces, &MockCacheRepository{})

		mockPlaces.On("GetByID", ctx, int64(5)).Return(&domain.Place{ID: 5, Name: "Pão de Açúcar"}, nil)
		mockPlaces.On("AddFavorite", ctx, int64(7), int64(5)).Return(nil)

		err := uc.AddFavorite(ctx, 7, 5)

		assert.NoError(t, err)
		mockPlaces.AssertCalled(t, "AddFavorite", ctx, int64(7), int64(5))
	})

	t.Run("favoriting an unknown place is not found", func(t *testing.T) {
		mockPlaces := &MockPlaceRepository{}
		uc := newPlaceUseCase(mockPlaces, &MockCacheRepository{})

		mockPlaces.On("GetByID", ctx, int64(999)).Return(nil, apperrors.ErrPlaceNotFound)

		err := uc.AddFavorite(ctx, 7, 999)

		assert.Equal(t, apperrors.ErrPlaceNotFound, err)
		mockPlaces.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("listing favorites converts to responses", func(t *testing.T) {
		mockPlaces := &MockPlaceRepository{}
		uc := newPlaceUseCase(mockPlaces, &MockCacheRepository{})

		mockPlaces.On("ListFavorites", ctx, int64(7)).Return([]*domain.Place{
			{ID: 5, Name: "Pão de Açúcar", Type: ptrString("attraction")},
		}, nil)

		result, err := uc.ListFavorites(ctx, 7)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "Pão de Açúcar", result[0].Name)
	})
}
