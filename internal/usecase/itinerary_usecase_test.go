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

func newItineraryUseCase(repo *MockItineraryRepository, cache *MockCacheRepository) *usecase.ItineraryUseCase {
	return usecase.NewItineraryUseCase(repo, cache, zap.NewNop(), time.Minute)
}

func TestItineraryUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists parsed dates and owner", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Itinerary")).
			Run(func(args mock.Arguments) {
				it := args.Get(1).(*domain.Itinerary)
				it.ID = 42
			}).
			Return(nil)

		resp, err := uc.Create(ctx, 7, dto.CreateItineraryRequest{
			Name:        "Summer in Rio",
			Destination: "Rio de Janeiro",
			StartDate:   "2025-07-10",
			EndDate:     "2025-07-15",
			IsPublic:    true,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "Summer in Rio", resp.Name)
		assert.Equal(t, "Rio de Janeiro", resp.Destination)
		assert.Equal(t, "Itinerary created successfully", resp.Message)

		it := mockRepo.Calls[0].Arguments.Get(1).(*domain.Itinerary)
		assert.Equal(t, int64(7), it.UserID)
		assert.Equal(t, "2025-07-10", it.StartDate.String())
		assert.Equal(t, "2025-07-15", it.EndDate.String())
		assert.True(t, it.IsPublic)
		assert.Nil(t, it.Description)
		// Every itinerary gets a share code at creation.
		assert.NotNil(t, it.ShareCode)
		assert.Regexp(t, `^[A-Z0-9]{10}$`, *it.ShareCode)
	})

	t.Run("dates are optional", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Itinerary")).Return(nil)

		_, err := uc.Create(ctx, 7, dto.CreateItineraryRequest{
			Name:        "Someday",
			Destination: "Lisboa",
		})

		assert.NoError(t, err)
		it := mockRepo.Calls[0].Arguments.Get(1).(*domain.Itinerary)
		assert.Nil(t, it.StartDate)
		assert.Nil(t, it.EndDate)
	})

	t.Run("malformed date writes nothing", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		_, err := uc.Create(ctx, 7, dto.CreateItineraryRequest{
			Name:        "Bad",
			Destination: "Rio",
			StartDate:   "10/07/2025",
		})

		appErr, ok := err.(*apperrors.AppError)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrInvalidDate.Code, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("end date before start date is rejected", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		_, err := uc.Create(ctx, 7, dto.CreateItineraryRequest{
			Name:        "Backwards",
			Destination: "Rio",
			StartDate:   "2025-07-15",
			EndDate:     "2025-07-10",
		})

		appErr, ok := err.(*apperrors.AppError)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrInvalidDate.Code, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		_, err := uc.Create(ctx, 7, dto.CreateItineraryRequest{Name: "No destination"})

		appErr, ok := err.(*apperrors.AppError)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrValidation.Code, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestItineraryUseCase_Get(t *testing.T) {
	ctx := context.Background()

	itinerary := &domain.Itinerary{
		ID:          1,
		UserID:      7,
		Name:        "Summer in Rio",
		Destination: "Rio de Janeiro",
		StartDate:   ptrDate(domain.NewDate(time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))),
		IsPublic:    false,
	}

	t.Run("owner sees days with activities", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		mockCache := &MockCacheRepository{}
		uc := newItineraryUseCase(mockRepo, mockCache)

		days := []*domain.ItineraryDay{
			{ID: 10, ItineraryID: 1, DayNumber: 1, Activities: []*domain.Activity{
				{ID: 100, DayID: 10, Title: "Cristo Redentor", Type: "attraction"},
			}},
			{ID: 11, ItineraryID: 1, DayNumber: 2},
		}

		mockRepo.On("GetByID", ctx, int64(1)).Return(itinerary, nil)
		mockRepo.On("GetDaysWithActivities", ctx, int64(1)).Return(days, nil)
		mockCache.On("Get", ctx, "itinerary:detail:1").Return(nil, nil)
		mockCache.On("Set", ctx, "itinerary:detail:1", mock.Anything, time.Minute).Return(nil)

		detail, err := uc.Get(ctx, 1, 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), detail.ID)
		assert.Equal(t, int64(7), detail.UserID)
		assert.Len(t, detail.Days, 2)
		assert.Len(t, detail.Days[0].Activities, 1)
		assert.Equal(t, "Cristo Redentor", detail.Days[0].Activities[0].Title)
		// A day without activities still serializes an empty array.
		assert.NotNil(t, detail.Days[1].Activities)
		assert.Len(t, detail.Days[1].Activities, 0)
	})

	t.Run("private itinerary reads as not found for strangers", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		mockRepo.On("GetByID", ctx, int64(1)).Return(itinerary, nil)

		_, err := uc.Get(ctx, 1, 99)

		assert.Equal(t, apperrors.ErrItineraryNotFound, err)
		mockRepo.AssertNotCalled(t, "GetDaysWithActivities", mock.Anything, mock.Anything)
	})

	t.Run("public itinerary is readable by anyone", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		mockCache := &MockCacheRepository{}
		uc := newItineraryUseCase(mockRepo, mockCache)

		public := *itinerary
		public.IsPublic = true

		mockRepo.On("GetByID", ctx, int64(1)).Return(&public, nil)
		mockRepo.On("GetDaysWithActivities", ctx, int64(1)).Return([]*domain.ItineraryDay{}, nil)
		mockCache.On("Get", ctx, "itinerary:detail:1").Return(nil, nil)
		mockCache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		detail, err := uc.Get(ctx, 1, 99)

		assert.NoError(t, err)
		assert.NotNil(t, detail.Days)
		assert.Len(t, detail.Days, 0)
	})

	t.Run("cache hit skips the day query", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		mockCache := &MockCacheRepository{}
		uc := newItineraryUseCase(mockRepo, mockCache)

		cached, _ := json.Marshal(dto.NewItineraryDetail(itinerary, nil))

		mockRepo.On("GetByID", ctx, int64(1)).Return(itinerary, nil)
		mockCache.On("Get", ctx, "itinerary:detail:1").Return(cached, nil)

		detail, err := uc.Get(ctx, 1, 7)

		assert.NoError(t, err)
		assert.Equal(t, "Summer in Rio", detail.Name)
		mockRepo.AssertNotCalled(t, "GetDaysWithActivities", mock.Anything, mock.Anything)
	})

	t.Run("unknown id propagates not found", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		mockRepo.On("GetByID", ctx, int64(404)).Return(nil, apperrors.ErrItineraryNotFound)

		_, err := uc.Get(ctx, 404, 7)

		assert.Equal(t, apperrors.ErrItineraryNotFound, err)
	})
}

func TestItineraryUseCase_Update(t *testing.T) {
	ctx := context.Background()

	base := func() *domain.Itinerary {
		return &domain.Itinerary{
			ID:          1,
			UserID:      7,
			Name:        "Summer in Rio",
			Destination: "Rio de Janeiro",
			StartDate:   ptrDate(domain.NewDate(time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))),
			EndDate:     ptrDate(domain.NewDate(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC))),
			IsPublic:    false,
		}
	}

	t.Run("changes only the fields present and invalidates the cache", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		mockCache := &MockCacheRepository{}
		uc := newItineraryUseCase(mockRepo, mockCache)

		mockRepo.On("GetByID", ctx, int64(1)).Return(base(), nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Itinerary")).Return(nil)
		mockCache.On("Delete", ctx, "itinerary:detail:1").Return(nil)

		summary, err := uc.Update(ctx, 1, 7, dto.UpdateItineraryRequest{
			Name:     ptrString("Winter in Rio"),
			IsPublic: ptrBool(true),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Winter in Rio", summary.Name)
		assert.True(t, summary.IsPublic)
		// Untouched fields keep their stored values.
		assert.Equal(t, "Rio de Janeiro", summary.Destination)
		assert.Equal(t, "2025-07-10", summary.StartDate.String())
		mockCache.AssertCalled(t, "Delete", ctx, "itinerary:detail:1")
	})

	t.Run("new dates are parsed and checked against each other", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		mockRepo.On("GetByID", ctx, int64(1)).Return(base(), nil)

		_, err := uc.Update(ctx, 1, 7, dto.UpdateItineraryRequest{
			EndDate: ptrString("2025-07-01"),
		})

		appErr, ok := err.(*apperrors.AppError)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrInvalidDate.Code, appErr.Code)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("malformed date writes nothing", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		mockRepo.On("GetByID", ctx, int64(1)).Return(base(), nil)

		_, err := uc.Update(ctx, 1, 7, dto.UpdateItineraryRequest{
			StartDate: ptrString("10/07/2025"),
		})

		appErr, ok := err.(*apperrors.AppError)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrInvalidDate.Code, appErr.Code)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("non-owner cannot update, even a public itinerary", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		public := base()
		public.IsPublic = true
		mockRepo.On("GetByID", ctx, int64(1)).Return(public, nil)

		_, err := uc.Update(ctx, 1, 99, dto.UpdateItineraryRequest{
			Name: ptrString("Hijacked"),
		})

		assert.Equal(t, apperrors.ErrItineraryNotFound, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestItineraryUseCase_GetByShareCode(t *testing.T) {
	ctx := context.Background()

	t.Run("share code opens a private itinerary", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		mockCache := &MockCacheRepository{}
		uc := newItineraryUseCase(mockRepo, mockCache)

		private := &domain.Itinerary{
			ID:          1,
			UserID:      7,
			Name:        "Secret trip",
			Destination: "Lisboa",
			IsPublic:    false,
			ShareCode:   ptrString("ABC123XYZ0"),
		}

		mockRepo.On("GetByShareCode", ctx, "ABC123XYZ0").Return(private, nil)
		mockRepo.On("GetDaysWithActivities", ctx, int64(1)).Return([]*domain.ItineraryDay{
			{ID: 10, ItineraryID: 1, DayNumber: 1},
		}, nil)
		mockCache.On("Get", ctx, "itinerary:detail:1").Return(nil, nil)
		mockCache.On("Set", ctx, "itinerary:detail:1", mock.Anything, time.Minute).Return(nil)

		detail, err := uc.GetByShareCode(ctx, "ABC123XYZ0")

		assert.NoError(t, err)
		assert.Equal(t, "Secret trip", detail.Name)
		assert.Len(t, detail.Days, 1)
	})

	t.Run("unknown code reads as not found", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		mockRepo.On("GetByShareCode", ctx, "NOPE").Return(nil, apperrors.ErrItineraryNotFound)

		_, err := uc.GetByShareCode(ctx, "NOPE")

		assert.Equal(t, apperrors.ErrItineraryNotFound, err)
	})
}

func TestItineraryUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	itinerary := &domain.Itinerary{ID: 1, UserID: 7, Name: "Mine", Destination: "Rio"}

	t.Run("owner deletes and cache is invalidated", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		mockCache := &MockCacheRepository{}
		uc := newItineraryUseCase(mockRepo, mockCache)

		mockRepo.On("GetByID", ctx, int64(1)).Return(itinerary, nil)
		mockRepo.On("Delete", ctx, int64(1)).Return(nil)
		mockCache.On("Delete", ctx, "itinerary:detail:1").Return(nil)

		err := uc.Delete(ctx, 1, 7)

		assert.NoError(t, err)
		mockRepo.AssertCalled(t, "Delete", ctx, int64(1))
		mockCache.AssertCalled(t, "Delete", ctx, "itinerary:detail:1")
	})

	t.Run("non-owner cannot delete, even a public itinerary", func(t *testing.T) {
		mockRepo := &MockItineraryRepository{}
		uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

		public := *itinerary
		public.IsPublic = true

		mockRepo.On("GetByID", ctx, int64(1)).Return(&public, nil)

		err := uc.Delete(ctx, 1, 99)

		assert.Equal(t, apperrors.ErrItineraryNotFound, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestItineraryUseCase_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockItineraryRepository{}
	uc := newItineraryUseCase(mockRepo, &MockCacheRepository{})

	mockRepo.On("ListByOwner", ctx, int64(7)).Return([]*domain.Itinerary{
		{ID: 1, UserID: 7, Name: "A", Destination: "Rio"},
		{ID: 2, UserID: 7, Name: "B", Destination: "Lisboa", Description: ptrString("notes")},
	}, nil)

	summaries, err := uc.List(ctx, 7)

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "A", summaries[0].Name)
	assert.Nil(t, summaries[0].Description)
	assert.Equal(t, "notes", *summaries[1].Description)
}
