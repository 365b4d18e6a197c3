package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/validator"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase/dto"
)

// ActivityUseCase attaches places and free-form activities to itinerary days.
type ActivityUseCase struct {
	itineraryRepo repository.ItineraryRepository
	placeRepo     repository.PlaceRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
}

func NewActivityUseCase(
	itineraryRepo repository.ItineraryRepository,
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *ActivityUseCase {
	return &ActivityUseCase{
		itineraryRepo: itineraryRepo,
		placeRepo:     placeRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
	}
}

// AddPlace validates the request, resolves the target day (creating it when
// it does not exist yet) and persists a new activity under it. Nothing is
// written when any validation fails.
func (uc *ActivityUseCase) AddPlace(ctx context.Context, itineraryID, userID int64, req dto.AddPlaceRequest) (*dto.AddPlaceResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	startTime, err := parseOptionalTime(req.StartTime, "start_time")
	if err != nil {
		return nil, err
	}
	endTime, err := parseOptionalTime(req.EndTime, "end_time")
	if err != nil {
		return nil, err
	}
	if startTime != nil && endTime != nil && endTime.Before(startTime.Time) {
		return nil, errors.ErrInvalidTime.WithDetails(map[string]interface{}{
			"end_time": "must not be before start_time",
		})
	}

	itinerary, err := uc.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	if itinerary.UserID != userID {
		if !itinerary.IsPublic {
			return nil, errors.ErrItineraryNotFound
		}
		return nil, errors.ErrUnauthorized
	}

	activity := &domain.Activity{
		Title:       req.Title,
		Description: optionalString(req.Description),
		StartTime:   startTime,
		EndTime:     endTime,
		Type:        req.Type,
		Location:    optionalString(req.Location),
		Address:     optionalString(req.Address),
		Cost:        req.Cost,
	}
	if activity.Type == "" {
		activity.Type = domain.ActivityTypeOther
	}

	// The catalog link is best effort: a dangling place_id downgrades the
	// activity to free-form instead of failing the request.
	if req.PlaceID != nil {
		place, err := uc.placeRepo.GetByID(ctx, *req.PlaceID)
		switch err {
		case nil:
			activity.PlaceID = &place.ID
			uc.fillFromPlace(activity, place)
		case errors.ErrPlaceNotFound:
			uc.logger.Warn("Referenced place does not exist, keeping activity unlinked",
				zap.Int64("place_id", *req.PlaceID),
				zap.Int64("itinerary_id", itineraryID))
		default:
			return nil, err
		}
	}

	dayNumber := req.DayNumber
	if dayNumber == 0 {
		dayNumber = 1
	}

	var dayDate *domain.Date
	if itinerary.StartDate != nil {
		d := itinerary.StartDate.AddDays(dayNumber - 1)
		dayDate = &d
	}

	result, err := uc.itineraryRepo.AttachActivity(ctx, itineraryID, dayNumber, dayDate, activity)
	if err != nil {
		uc.logger.Error("Failed to attach activity",
			zap.Int64("itinerary_id", itineraryID),
			zap.Int("day_number", dayNumber),
			zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.Delete(ctx, itineraryDetailKey(itineraryID)); err != nil {
		uc.logger.Warn("Failed to invalidate itinerary cache", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
	}

	uc.logger.Info("Activity added",
		zap.Int64("itinerary_id", itineraryID),
		zap.Int64("activity_id", result.ActivityID),
		zap.Int64("day_id", result.DayID),
		zap.Bool("day_created", result.DayCreated))

	return &dto.AddPlaceResponse{
		Message:    "Place added to itinerary successfully",
		ActivityID: result.ActivityID,
		DayID:      result.DayID,
	}, nil
}

// fillFromPlace copies catalog fields the request left blank.
func (uc *ActivityUseCase) fillFromPlace(activity *domain.Activity, place *domain.Place) {
	if activity.Location == nil && place.City != nil {
		activity.Location = place.City
	}
	if activity.Address == nil && place.Address != nil {
		activity.Address = place.Address
	}
	if activity.Type == domain.ActivityTypeOther && place.Type != nil && *place.Type != "" {
		activity.Type = *place.Type
	}
}

func parseOptionalTime(value, field string) (*domain.TimeOfDay, error) {
	if value == "" {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(value)
	if err != nil {
		return nil, errors.ErrInvalidTime.WithDetails(map[string]interface{}{
			field: value,
		})
	}
	return &t, nil
}
