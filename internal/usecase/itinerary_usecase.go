package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/validator"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase/dto"
)

// ItineraryUseCase handles itinerary listing, creation, detail assembly and
// deletion.
type ItineraryUseCase struct {
	itineraryRepo repository.ItineraryRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	detailTTL     time.Duration
}

func NewItineraryUseCase(
	itineraryRepo repository.ItineraryRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	detailTTL time.Duration,
) *ItineraryUseCase {
	return &ItineraryUseCase{
		itineraryRepo: itineraryRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		detailTTL:     detailTTL,
	}
}

func itineraryDetailKey(id int64) string {
	return "itinerary:detail:" + strconv.FormatInt(id, 10)
}

// List returns the summaries of every itinerary the user owns.
func (uc *ItineraryUseCase) List(ctx context.Context, userID int64) ([]*dto.ItinerarySummary, error) {
	itineraries, err := uc.itineraryRepo.ListByOwner(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list itineraries", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return dto.NewItinerarySummaries(itineraries), nil
}

// Create validates the request, parses the dates and persists a new
// itinerary owned by the given user.
func (uc *ItineraryUseCase) Create(ctx context.Context, userID int64, req dto.CreateItineraryRequest) (*dto.CreateItineraryResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	startDate, err := parseOptionalDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate, "end_date")
	if err != nil {
		return nil, err
	}
	if startDate != nil && endDate != nil && endDate.Before(startDate.Time) {
		return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
			"end_date": "must not be before start_date",
		})
	}

	shareCode := domain.NewShareCode()
	itinerary := &domain.Itinerary{
		UserID:      userID,
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: optionalString(req.Description),
		IsPublic:    req.IsPublic,
		ShareCode:   &shareCode,
	}

	if err := uc.itineraryRepo.Create(ctx, itinerary); err != nil {
		uc.logger.Error("Failed to create itinerary", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Itinerary created",
		zap.Int64("itinerary_id", itinerary.ID),
		zap.Int64("user_id", userID))

	return &dto.CreateItineraryResponse{
		ID:          itinerary.ID,
		Name:        itinerary.Name,
		Destination: itinerary.Destination,
		Message:     "Itinerary created successfully",
	}, nil
}

// Update overwrites the fields present in the request and keeps the rest.
// Only the owner may update; anyone else sees not found.
func (uc *ItineraryUseCase) Update(ctx context.Context, id, userID int64, req dto.UpdateItineraryRequest) (*dto.ItinerarySummary, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	itinerary, err := uc.itineraryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if itinerary.UserID != userID {
		return nil, errors.ErrItineraryNotFound
	}

	if req.Name != nil {
		itinerary.Name = *req.Name
	}
	if req.Destination != nil {
		itinerary.Destination = *req.Destination
	}
	if req.StartDate != nil {
		itinerary.StartDate, err = parseOptionalDate(*req.StartDate, "start_date")
		if err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		itinerary.EndDate, err = parseOptionalDate(*req.EndDate, "end_date")
		if err != nil {
			return nil, err
		}
	}
	if itinerary.StartDate != nil && itinerary.EndDate != nil && itinerary.EndDate.Before(itinerary.StartDate.Time) {
		return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
			"end_date": "must not be before start_date",
		})
	}
	if req.Description != nil {
		itinerary.Description = optionalString(*req.Description)
	}
	if req.IsPublic != nil {
		itinerary.IsPublic = *req.IsPublic
	}

	if err := uc.itineraryRepo.Update(ctx, itinerary); err != nil {
		uc.logger.Error("Failed to update itinerary", zap.Int64("itinerary_id", id), zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.Delete(ctx, itineraryDetailKey(id)); err != nil {
		uc.logger.Warn("Failed to invalidate itinerary cache", zap.Int64("itinerary_id", id), zap.Error(err))
	}

	uc.logger.Info("Itinerary updated", zap.Int64("itinerary_id", id), zap.Int64("user_id", userID))
	return dto.NewItinerarySummary(itinerary), nil
}

// GetByShareCode returns the full detail view for a share code. Knowing the
// code grants read access, so the public flag is not consulted.
func (uc *ItineraryUseCase) GetByShareCode(ctx context.Context, code string) (*dto.ItineraryDetail, error) {
	itinerary, err := uc.itineraryRepo.GetByShareCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return uc.loadDetail(ctx, itinerary)
}

// Get returns the full detail view. A private itinerary is reported as not
// found to anyone but its owner, so existence is never leaked.
func (uc *ItineraryUseCase) Get(ctx context.Context, id, viewerID int64) (*dto.ItineraryDetail, error) {
	itinerary, err := uc.itineraryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !itinerary.VisibleTo(viewerID) {
		return nil, errors.ErrItineraryNotFound
	}
	return uc.loadDetail(ctx, itinerary)
}

// loadDetail assembles the detail view from cache or the database. Callers
// have already settled access, so a cached detail can be served to any
// permitted viewer.
func (uc *ItineraryUseCase) loadDetail(ctx context.Context, itinerary *domain.Itinerary) (*dto.ItineraryDetail, error) {
	key := itineraryDetailKey(itinerary.ID)
	if cached, err := uc.cacheRepo.Get(ctx, key); err == nil && cached != nil {
		var detail dto.ItineraryDetail
		if err := json.Unmarshal(cached, &detail); err == nil {
			return &detail, nil
		}
		uc.logger.Warn("Failed to decode cached itinerary detail", zap.String("key", key))
	}

	days, err := uc.itineraryRepo.GetDaysWithActivities(ctx, itinerary.ID)
	if err != nil {
		uc.logger.Error("Failed to load itinerary days", zap.Int64("itinerary_id", itinerary.ID), zap.Error(err))
		return nil, err
	}

	detail := dto.NewItineraryDetail(itinerary, days)

	if data, err := json.Marshal(detail); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.detailTTL); err != nil {
			uc.logger.Warn("Failed to cache itinerary detail", zap.String("key", key), zap.Error(err))
		}
	}

	return detail, nil
}

// Delete removes an itinerary and everything it owns. Only the owner may
// delete; anyone else sees not found.
func (uc *ItineraryUseCase) Delete(ctx context.Context, id, userID int64) error {
	itinerary, err := uc.itineraryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if itinerary.UserID != userID {
		return errors.ErrItineraryNotFound
	}

	if err := uc.itineraryRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete itinerary", zap.Int64("itinerary_id", id), zap.Error(err))
		return err
	}

	if err := uc.cacheRepo.Delete(ctx, itineraryDetailKey(id)); err != nil {
		uc.logger.Warn("Failed to invalidate itinerary cache", zap.Int64("itinerary_id", id), zap.Error(err))
	}

	uc.logger.Info("Itinerary deleted", zap.Int64("itinerary_id", id), zap.Int64("user_id", userID))
	return nil
}

// parseOptionalDate treats an empty string as absent and reports a malformed
// value as INVALID_DATE with the offending field named.
func parseOptionalDate(value, field string) (*domain.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
			field: value,
		})
	}
	return &d, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
