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

type checklistRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewChecklistRepository(db *DB) repository.ChecklistRepository {
	return &checklistRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *checklistRepository) Create(ctx context.Context, checklist *domain.Checklist) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO checklists (itinerary_id, template_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		checklist.ItineraryID,
		checklist.TemplateID,
		checklist.Name,
		checklist.Description,
	).Scan(&checklist.ID, &checklist.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create checklist", zap.Int64("itinerary_id", checklist.ItineraryID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	for _, item := range checklist.Items {
		item.ChecklistID = checklist.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO checklist_items (checklist_id, text, priority)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`, item.ChecklistID, item.Text, item.Priority).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			r.logger.Error("Failed to create checklist item", zap.Int64("checklist_id", checklist.ID), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit checklist transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *checklistRepository) ListByItinerary(ctx context.Context, itineraryID int64) ([]*domain.Checklist, error) {
	checklists := []*domain.Checklist{}
	err := r.db.SelectContext(ctx, &checklists, `
		SELECT id, itinerary_id, template_id, name, description, created_at
		FROM checklists
		WHERE itinerary_id = $1
		ORDER BY id
	`, itineraryID)
	if err != nil {
		r.logger.Error("Failed to list checklists", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if len(checklists) == 0 {
		return checklists, nil
	}

	ids := make([]int64, len(checklists))
	byID := make(map[int64]*domain.Checklist, len(checklists))
	for i, c := range checklists {
		c.Items = []*domain.ChecklistItem{}
		ids[i] = c.ID
		byID[c.ID] = c
	}

	items := []*domain.ChecklistItem{}
	err = r.db.SelectContext(ctx, &items, `
		SELECT id, checklist_id, text, is_completed, priority, completed_at, created_at
		FROM checklist_items
		WHERE checklist_id = ANY($1)
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to list checklist items", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, item := range items {
		if c, ok := byID[item.ChecklistID]; ok {
			c.Items = append(c.Items, item)
		}
	}

	return checklists, nil
}

func (r *checklistRepository) GetTemplate(ctx context.Context, id int64) (*domain.ChecklistTemplate, error) {
	var template domain.ChecklistTemplate
	err := r.db.GetContext(ctx, &template, `
		SELECT id, user_id, name, description, is_public, type, created_at
		FROM checklist_templates
		WHERE id = $1
	`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTemplateNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get checklist template", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	template.Items = []*domain.ChecklistTemplateItem{}
	err = r.db.SelectContext(ctx, &template.Items, `
		SELECT id, template_id, text, priority
		FROM checklist_template_items
		WHERE template_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		r.logger.Error("Failed to get template items", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &template, nil
}

func (r *checklistRepository) SetItemCompletion(ctx context.Context, itemID, ownerID int64, completed bool) (*domain.ChecklistItem, error) {
	// Single statement scoped to the owner through the checklist -> itinerary
	// join. Zero rows means the item does not exist for this user.
	query := `
		UPDATE checklist_items ci
		SET is_completed = $3,
		    completed_at = CASE WHEN $3 THEN now() ELSE NULL END
		FROM checklists c
		JOIN itineraries i ON i.id = c.itinerary_id
		WHERE ci.id = $1
		  AND ci.checklist_id = c.id
		  AND i.user_id = $2
		RETURNING ci.id, ci.checklist_id, ci.text, ci.is_completed, ci.priority, ci.completed_at, ci.created_at
	`

	var item domain.ChecklistItem
	err := r.db.QueryRowContext(ctx, query, itemID, ownerID, completed).Scan(
		&item.ID, &item.ChecklistID, &item.Text, &item.IsCompleted,
		&item.Priority, &item.CompletedAt, &item.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrChecklistItemNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update checklist item", zap.Int64("item_id", itemID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &item, nil
}
