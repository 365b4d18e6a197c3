package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	apperrors "github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase/dto"
)

func newActivityUseCase(itineraries *MockItineraryRepository, places *MockPlaceRepository, cache *MockCacheRepository) *usecase.ActivityUseCase {
	return usecase.NewActivityUseCase(itineraries, places, cache, zap.NewNop())
}

func TestActivityUseCase_AddPlace(t *testing.T) {
	ctx := context.Background()

	itinerary := &domain.Itinerary{
		ID:          1,
		UserID:      7,
		Name:        "Summer in Rio",
		Destination: "Rio de Janeiro",
		StartDate:   ptrDate(domain.NewDate(time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))),
	}

	t.Run("creates the day with a derived date", func(t *testing.T) {
		mockItineraries := &MockItineraryRepository{}
		mockCache := &MockCacheRepository{}
		uc := newActivityUseCase(mockItineraries, &MockPlaceRepository{}, mockCache)

		mockItineraries.On("GetByID", ctx, int64(1)).Return(itinerary, nil)
		mockItineraries.On("AttachActivity", ctx, int64(1), 3,
			mock.MatchedBy(func(d *domain.Date) bool { return d != nil && d.String() == "2025-07-12" }),
			mock.AnythingOfType("*domain.Activity")).
			Return(&repository.AttachActivityResult{DayID: 30, DayCreated: true, ActivityID: 300}, nil)
		mockCache.On("Delete", ctx, "itinerary:detail:1").Return(nil)

		resp, err := uc.AddPlace(ctx, 1, 7, dto.AddPlaceRequest{
			Title:     "Sunset hike",
			DayNumber: 3,
			StartTime: "17:30",
			EndTime:   "19:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Place added to itinerary successfully", resp.Message)
		assert.Equal(t, int64(300), resp.ActivityID)
		assert.Equal(t, int64(30), resp.DayID)

		activity := mockItineraries.Calls[1].Arguments.Get(4).(*domain.Activity)
		assert.Equal(t, "17:30", activity.StartTime.String())
		assert.Equal(t, "19:00", activity.EndTime.String())
		assert.Equal(t, domain.ActivityTypeOther, activity.Type)
		mockCache.AssertCalled(t, "Delete", ctx, "itinerary:detail:1")
	})

	t.Run("day number defaults to 1", func(t *testing.T) {
		mockItineraries := &MockItineraryRepository{}
		mockCache := &MockCacheRepository{}
		uc := newActivityUseCase(mockItineraries, &MockPlaceRepository{}, mockCache)

		mockItineraries.On("GetByID", ctx, int64(1)).Return(itinerary, nil)
		mockItineraries.On("AttachActivity", ctx, int64(1), 1,
			mock.MatchedBy(func(d *domain.Date) bool { return d != nil && d.String() == "2025-07-10" }),
			mock.AnythingOfType("*domain.Activity")).
			Return(&repository.AttachActivityResult{DayID: 10, ActivityID: 100}, nil)
		mockCache.On("Delete", ctx, mock.Anything).Return(nil)

		_, err := uc.AddPlace(ctx, 1, 7, dto.AddPlaceRequest{Title: "Breakfast"})

		assert.NoError(t, err)
	})

	t.Run("undated itinerary leaves the day undated", func(t *testing.T) {
		mockItineraries := &MockItineraryRepository{}
		mockCache := &MockCacheRepository{}
		uc := newActivityUseCase(mockItineraries, &MockPlaceRepository{}, mockCache)

		undated := *itinerary
		undated.StartDate = nil

		mockItineraries.On("GetByID", ctx, int64(1)).Return(&undated, nil)
		mockItineraries.On("AttachActivity", ctx, int64(1), 2, (*domain.Date)(nil),
			mock.AnythingOfType("*domain.Activity")).
			Return(&repository.AttachActivityResult{DayID: 20, ActivityID: 200}, nil)
		mockCache.On("Delete", ctx, mock.Anything).Return(nil)

		_, err := uc.AddPlace(ctx, 1, 7, dto.AddPlaceRequest{Title: "Museum", DayNumber: 2})

		assert.NoError(t, err)
	})

	t.Run("linked place fills blank fields", func(t *testing.T) {
		mockItineraries := &MockItineraryRepository{}
		mockPlaces := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newActivityUseCase(mockItineraries, mockPlaces, mockCache)

		place := &domain.Place{
			ID:      50,
			Name:    "Confeitaria Colombo",
			City:    ptrString("Rio de Janeiro"),
			Address: ptrString("R. Gonçalves Dias, 32"),
			Type:    ptrString("restaurant"),
		}

		mockItineraries.On("GetByID", ctx, int64(1)).Return(itinerary, nil)
		mockPlaces.On("GetByID", ctx, int64(50)).Return(place, nil)
		mockItineraries.On("AttachActivity", ctx, int64(1), 1, mock.Anything,
			mock.MatchedBy(func(a *domain.Activity) bool {
				return a.PlaceID != nil && *a.PlaceID == 50 &&
					a.Type == "restaurant" &&
					a.Location != nil && *a.Location == "Rio de Janeiro" &&
					a.Address != nil && *a.Address == "R. Gonçalves Dias, 32"
			})).
			Return(&repository.AttachActivityResult{DayID: 10, ActivityID: 101}, nil)
		mockCache.On("Delete", ctx, mock.Anything).Return(nil)

		_, err := uc.AddPlace(ctx, 1, 7, dto.AddPlaceRequest{Title: "Coffee", PlaceID: ptrInt64(50)})

		assert.NoError(t, err)
	})

	t.Run("dangling place id degrades to an unlinked activity", func(t *testing.T) {
		mockItineraries := &MockItineraryRepository{}
		mockPlaces := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newActivityUseCase(mockItineraries, mockPlaces, mockCache)

		mockItineraries.On("GetByID", ctx, int64(1)).Return(itinerary, nil)
		mockPlaces.On("GetByID", ctx, int64(999)).Return(nil, apperrors.ErrPlaceNotFound)
		mockItineraries.On("AttachActivity", ctx, int64(1), 1, mock.Anything,
			mock.MatchedBy(func(a *domain.Activity) bool { return a.PlaceID == nil })).
			Return(&repository.AttachActivityResult{DayID: 10, ActivityID: 102}, nil)
		mockCache.On("Delete", ctx, mock.Anything).Return(nil)

		resp, err := uc.AddPlace(ctx, 1, 7, dto.AddPlaceRequest{Title: "Mystery stop", PlaceID: ptrInt64(999)})

		assert.NoError(t, err)
		assert.Equal(t, int64(102), resp.ActivityID)
	})

	t.Run("malformed time writes nothing", func(t *testing.T) {
		mockItineraries := &MockItineraryRepository{}
		uc := newActivityUseCase(mockItineraries, &MockPlaceRepository{}, &MockCacheRepository{})

		_, err := uc.AddPlace(ctx, 1, 7, dto.AddPlaceRequest{Title: "Bad", StartTime: "5pm"})

		appErr, ok := err.(*apperrors.AppError)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrInvalidTime.Code, appErr.Code)
		mockItineraries.AssertNotCalled(t, "AttachActivity",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("end time before start time is rejected", func(t *testing.T) {
		mockItineraries := &MockItineraryRepository{}
		uc := newActivityUseCase(mockItineraries, &MockPlaceRepository{}, &MockCacheRepository{})

		_, err := uc.AddPlace(ctx, 1, 7, dto.AddPlaceRequest{
			Title:     "Backwards",
			StartTime: "19:00",
			EndTime:   "17:30",
		})

		appErr, ok := err.(*apperrors.AppError)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrInvalidTime.Code, appErr.Code)
	})

	t.Run("missing title fails validation", func(t *testing.T) {
		mockItineraries := &MockItineraryRepository{}
		uc := newActivityUseCase(mockItineraries, &MockPlaceRepository{}, &MockCacheRepository{})

		_, err := uc.AddPlace(ctx, 1, 7, dto.AddPlaceRequest{})

		appErr, ok := err.(*apperrors.AppError)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrValidation.Code, appErr.Code)
	})

	t.Run("private itinerary reads as not found for strangers", func(t *testing.T) {
		mockItineraries := &MockItineraryRepository{}
		uc := newActivityUseCase(mockItineraries, &MockPlaceRepository{}, &MockCacheRepository{})

		mockItineraries.On("GetByID", ctx, int64(1)).Return(itinerary, nil)

		_, err := uc.AddPlace(ctx, 1, 99, dto.AddPlaceRequest{Title: "Intruder"})

		assert.Equal(t, apperrors.ErrItineraryNotFound, err)
	})

	t.Run("public itinerary still rejects non-owner writes", func(t *testing.T) {
		mockItineraries := &MockItineraryRepository{}
		uc := newActivityUseCase(mockItineraries, &MockPlaceRepository{}, &MockCacheRepository{})

		public := *itinerary
		public.IsPublic = true

		mockItineraries.On("GetByID", ctx, int64(1)).Return(&public, nil)

		_, err := uc.AddPlace(ctx, 1, 99, dto.AddPlaceRequest{Title: "Intruder"})

		assert.Equal(t, apperrors.ErrUnauthorized, err)
	})
}
