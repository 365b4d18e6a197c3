package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
)

const placeColumns = `id, name, description, address, city, country, type, rating,
	price_level, image_url, website, phone, latitude, longitude, created_at`

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places WHERE id = $1`, placeColumns)

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) Search(ctx context.Context, destination string, types []string) ([]*domain.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places WHERE 1=1`, placeColumns)

	args := []interface{}{}
	argIdx := 1

	if destination != "" {
		query += fmt.Sprintf(" AND city ILIKE $%d", argIdx)
		args = append(args, "%"+destination+"%")
		argIdx++
	}

	if len(types) > 0 {
		query += fmt.Sprintf(" AND type = ANY($%d)", argIdx)
		args = append(args, pq.Array(types))
		argIdx++
	}

	query += " ORDER BY id"

	places := []*domain.Place{}
	err := r.db.SelectContext(ctx, &places, query, args...)
	if err != nil {
		r.logger.Error("Failed to search places",
			zap.String("destination", destination),
			zap.Strings("types", types),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

func (r *placeRepository) AddFavorite(ctx context.Context, userID, placeID int64) error {
	query := `
		INSERT INTO user_favorites (user_id, place_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, place_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, userID, placeID); err != nil {
		r.logger.Error("Failed to add favorite",
			zap.Int64("user_id", userID),
			zap.Int64("place_id", placeID),
			zap.Error(err),
		)
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *placeRepository) RemoveFavorite(ctx context.Context, userID, placeID int64) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND place_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, placeID); err != nil {
		r.logger.Error("Failed to remove favorite",
			zap.Int64("user_id", userID),
			zap.Int64("place_id", placeID),
			zap.Error(err),
		)
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *placeRepository) ListFavorites(ctx context.Context, userID int64) ([]*domain.Place, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM places p
		JOIN user_favorites f ON f.place_id = p.id
		WHERE f.user_id = $1
		ORDER BY f.created_at
	`, placeColumnsPrefixed)

	places := []*domain.Place{}
	err := r.db.SelectContext(ctx, &places, query, userID)
	if err != nil {
		r.logger.Error("Failed to list favorites", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

const placeColumnsPrefixed = `p.id, p.name, p.description, p.address, p.city, p.country, p.type, p.rating,
	p.price_level, p.image_url, p.website, p.phone, p.latitude, p.longitude, p.created_at`
