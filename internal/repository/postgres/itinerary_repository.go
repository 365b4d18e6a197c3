package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
)

type itineraryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewItineraryRepository(db *DB) repository.ItineraryRepository {
	return &itineraryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *domain.Itinerary) error {
	query := `
		INSERT INTO itineraries (user_id, name, destination, start_date, end_date, description, is_public, cover_image_url, share_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		itinerary.UserID,
		itinerary.Name,
		itinerary.Destination,
		itinerary.StartDate,
		itinerary.EndDate,
		itinerary.Description,
		itinerary.IsPublic,
		itinerary.CoverImageURL,
		itinerary.ShareCode,
	).Scan(&itinerary.ID, &itinerary.CreatedAt, &itinerary.UpdatedAt)

	if err != nil {
		r.logger.Error("Failed to create itinerary", zap.Int64("user_id", itinerary.UserID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	query := `
		SELECT id, user_id, name, destination, start_date, end_date, description,
		       is_public, cover_image_url, share_code, created_at, updated_at
		FROM itineraries
		WHERE id = $1
	`

	var itinerary domain.Itinerary
	err := r.db.GetContext(ctx, &itinerary, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrItineraryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get itinerary by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &itinerary, nil
}

func (r *itineraryRepository) GetByShareCode(ctx context.Context, code string) (*domain.Itinerary, error) {
	query := `
		SELECT id, user_id, name, destination, start_date, end_date, description,
		       is_public, cover_image_url, share_code, created_at, updated_at
		FROM itineraries
		WHERE share_code = $1
	`

	var itinerary domain.Itinerary
	err := r.db.GetContext(ctx, &itinerary, query, code)
	if err == sql.ErrNoRows {
		return nil, errors.ErrItineraryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get itinerary by share code", zap.String("share_code", code), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &itinerary, nil
}

func (r *itineraryRepository) Update(ctx context.Context, itinerary *domain.Itinerary) error {
	query := `
		UPDATE itineraries
		SET name = $2, destination = $3, start_date = $4, end_date = $5,
		    description = $6, is_public = $7, cover_image_url = $8, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		itinerary.ID,
		itinerary.Name,
		itinerary.Destination,
		itinerary.StartDate,
		itinerary.EndDate,
		itinerary.Description,
		itinerary.IsPublic,
		itinerary.CoverImageURL,
	).Scan(&itinerary.UpdatedAt)

	if err == sql.ErrNoRows {
		return errors.ErrItineraryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update itinerary", zap.Int64("id", itinerary.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *itineraryRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Itinerary, error) {
	query := `
		SELECT id, user_id, name, destination, start_date, end_date, description,
		       is_public, cover_image_url, share_code, created_at, updated_at
		FROM itineraries
		WHERE user_id = $1
		ORDER BY id
	`

	itineraries := []*domain.Itinerary{}
	err := r.db.SelectContext(ctx, &itineraries, query, ownerID)
	if err != nil {
		r.logger.Error("Failed to list itineraries", zap.Int64("user_id", ownerID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return itineraries, nil
}

func (r *itineraryRepository) GetDaysWithActivities(ctx context.Context, itineraryID int64) ([]*domain.ItineraryDay, error) {
	daysQuery := `
		SELECT id, itinerary_id, day_number, date, notes
		FROM itinerary_days
		WHERE itinerary_id = $1
		ORDER BY day_number
	`

	days := []*domain.ItineraryDay{}
	if err := r.db.SelectContext(ctx, &days, daysQuery, itineraryID); err != nil {
		r.logger.Error("Failed to get itinerary days", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if len(days) == 0 {
		return days, nil
	}

	dayIDs := make([]int64, len(days))
	byID := make(map[int64]*domain.ItineraryDay, len(days))
	for i, d := range days {
		d.Activities = []*domain.Activity{}
		dayIDs[i] = d.ID
		byID[d.ID] = d
	}

	activitiesQuery := `
		SELECT id, day_id, place_id, title, description, start_time, end_time,
		       type, location, address, cost, booking_reference, booking_url, created_at
		FROM activities
		WHERE day_id = ANY($1)
		ORDER BY id
	`

	activities := []*domain.Activity{}
	if err := r.db.SelectContext(ctx, &activities, activitiesQuery, pq.Array(dayIDs)); err != nil {
		r.logger.Error("Failed to get activities", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, a := range activities {
		if day, ok := byID[a.DayID]; ok {
			day.Activities = append(day.Activities, a)
		}
	}

	return days, nil
}

func (r *itineraryRepository) AttachActivity(
	ctx context.Context,
	itineraryID int64,
	dayNumber int,
	dayDate *domain.Date,
	activity *domain.Activity,
) (*repository.AttachActivityResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	// Reuse the day with this number when it exists, otherwise create it.
	// The unique index on (itinerary_id, day_number) backs this up under
	// concurrent requests.
	var dayID int64
	created := false
	err = tx.GetContext(ctx, &dayID,
		`SELECT id FROM itinerary_days WHERE itinerary_id = $1 AND day_number = $2`,
		itineraryID, dayNumber,
	)
	if err == sql.ErrNoRows {
		err = tx.GetContext(ctx, &dayID,
			`INSERT INTO itinerary_days (itinerary_id, day_number, date) VALUES ($1, $2, $3) RETURNING id`,
			itineraryID, dayNumber, dayDate,
		)
		created = true
	}
	if err != nil {
		r.logger.Error("Failed to resolve itinerary day",
			zap.Int64("itinerary_id", itineraryID),
			zap.Int("day_number", dayNumber),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	activity.DayID = dayID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO activities (day_id, place_id, title, description, start_time, end_time, type, location, address, cost, booking_reference, booking_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`,
		activity.DayID,
		activity.PlaceID,
		activity.Title,
		activity.Description,
		activity.StartTime,
		activity.EndTime,
		activity.Type,
		activity.Location,
		activity.Address,
		activity.Cost,
		activity.BookingReference,
		activity.BookingURL,
	).Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create activity", zap.Int64("day_id", dayID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE itineraries SET updated_at = now() WHERE id = $1`, itineraryID,
	); err != nil {
		r.logger.Error("Failed to touch itinerary", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit attach transaction", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &repository.AttachActivityResult{
		DayID:      dayID,
		DayCreated: created,
		ActivityID: activity.ID,
	}, nil
}

func (r *itineraryRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	// Children first; the schema has no storage-level cascades on ownership
	// edges. Favorite joins and catalog places stay.
	statements := []string{
		`DELETE FROM expenses WHERE budget_id IN (SELECT id FROM budgets WHERE itinerary_id = $1)`,
		`DELETE FROM budget_categories WHERE budget_id IN (SELECT id FROM budgets WHERE itinerary_id = $1)`,
		`DELETE FROM budgets WHERE itinerary_id = $1`,
		`DELETE FROM checklist_items WHERE checklist_id IN (SELECT id FROM checklists WHERE itinerary_id = $1)`,
		`DELETE FROM checklists WHERE itinerary_id = $1`,
		`DELETE FROM activities WHERE day_id IN (SELECT id FROM itinerary_days WHERE itinerary_id = $1)`,
		`DELETE FROM itinerary_days WHERE itinerary_id = $1`,
		`DELETE FROM itinerary_shares WHERE itinerary_id = $1`,
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			r.logger.Error("Failed to delete itinerary children", zap.Int64("itinerary_id", id), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM itineraries WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete itinerary", zap.Int64("itinerary_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return errors.ErrItineraryNotFound
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit delete transaction", zap.Int64("itinerary_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
