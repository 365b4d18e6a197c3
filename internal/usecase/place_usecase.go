package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/validator"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase/dto"
)

// PlaceUseCase serves the place catalog: search and per-user favorites.
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	searchTTL time.Duration
}

func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	searchTTL time.Duration,
) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo: placeRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		searchTTL: searchTTL,
	}
}

func placeSearchKey(destination, placeType string) string {
	return "places:search:" + strings.ToLower(destination) + ":" + strings.ToLower(placeType)
}

// Search filters the catalog by destination substring and category tag. Both
// filters are optional; results for a given filter pair are cached briefly.
func (uc *PlaceUseCase) Search(ctx context.Context, req dto.SearchPlacesRequest) ([]*dto.PlaceResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	key := placeSearchKey(req.Destination, req.Type)
	if cached, err := uc.cacheRepo.Get(ctx, key); err == nil && cached != nil {
		var places []*dto.PlaceResponse
		if err := json.Unmarshal(cached, &places); err == nil {
			return places, nil
		}
		uc.logger.Warn("Failed to decode cached place search", zap.String("key", key))
	}

	var types []string
	if req.Type != "" {
		types = []string{req.Type}
	}

	places, err := uc.placeRepo.Search(ctx, req.Destination, types)
	if err != nil {
		uc.logger.Error("Failed to search places",
			zap.String("destination", req.Destination),
			zap.String("type", req.Type),
			zap.Error(err))
		return nil, err
	}

	result := dto.NewPlaceResponses(places)

	if data, err := json.Marshal(result); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.searchTTL); err != nil {
			uc.logger.Warn("Failed to cache place search", zap.String("key", key), zap.Error(err))
		}
	}

	return result, nil
}

// AddFavorite marks a place as a favorite of the user. Adding an already
// favorited place is a no-op.
func (uc *PlaceUseCase) AddFavorite(ctx context.Context, userID, placeID int64) error {
	// Resolve the place first so a dangling id maps to 404, not an FK error.
	if _, err := uc.placeRepo.GetByID(ctx, placeID); err != nil {
		return err
	}

	if err := uc.placeRepo.AddFavorite(ctx, userID, placeID); err != nil {
		uc.logger.Error("Failed to add favorite",
			zap.Int64("user_id", userID),
			zap.Int64("place_id", placeID),
			zap.Error(err))
		return err
	}
	return nil
}

func (uc *PlaceUseCase) RemoveFavorite(ctx context.Context, userID, placeID int64) error {
	if err := uc.placeRepo.RemoveFavorite(ctx, userID, placeID); err != nil {
		uc.logger.Error("Failed to remove favorite",
			zap.Int64("user_id", userID),
			zap.Int64("place_id", placeID),
			zap.Error(err))
		return err
	}
	return nil
}

func (uc *PlaceUseCase) ListFavorites(ctx context.Context, userID int64) ([]*dto.PlaceResponse, error) {
	places, err := uc.placeRepo.ListFavorites(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list favorites", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return dto.NewPlaceResponses(places), nil
}
