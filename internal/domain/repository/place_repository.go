package repository

import (
	"context"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
)

type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)

	// Search filters the catalog. destination matches city as a
	// case-insensitive substring; types match the category tag exactly. Both
	// filters are optional and compose with AND.
	Search(ctx context.Context, destination string, types []string) ([]*domain.Place, error)

	AddFavorite(ctx context.Context, userID, placeID int64) error
	RemoveFavorite(ctx context.Context, userID, placeID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]*domain.Place, error)
}
