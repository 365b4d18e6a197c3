package repository

import (
	"context"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
)

type ChecklistRepository interface {
	// Create persists the checklist together with its items in one
	// transaction.
	Create(ctx context.Context, checklist *domain.Checklist) error

	ListByItinerary(ctx context.Context, itineraryID int64) ([]*domain.Checklist, error)
	GetTemplate(ctx context.Context, id int64) (*domain.ChecklistTemplate, error)

	// SetItemCompletion updates the completion state of an item, scoped to
	// the itinerary owner so a user can never touch someone else's list.
	SetItemCompletion(ctx context.Context, itemID, ownerID int64, completed bool) (*domain.ChecklistItem, error)
}
