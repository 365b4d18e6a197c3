package repository

import (
	"context"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
)

// AttachActivityResult reports what the attach operation persisted.
type AttachActivityResult struct {
	DayID      int64
	DayCreated bool
	ActivityID int64
}

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *domain.Itinerary) error
	GetByID(ctx context.Context, id int64) (*domain.Itinerary, error)
	GetByShareCode(ctx context.Context, code string) (*domain.Itinerary, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Itinerary, error)

	// Update overwrites the itinerary's editable fields by id.
	Update(ctx context.Context, itinerary *domain.Itinerary) error
	GetDaysWithActivities(ctx context.Context, itineraryID int64) ([]*domain.ItineraryDay, error)

	// AttachActivity resolves the day with the given number, creating it with
	// the given date when absent, and persists the activity under it. Day
	// creation and activity creation commit as a single transaction.
	AttachActivity(ctx context.Context, itineraryID int64, dayNumber int, dayDate *domain.Date, activity *domain.Activity) (*AttachActivityResult, error)

	// Delete removes the itinerary and everything it owns (days, activities,
	// budget with categories and expenses, checklists with items, share rows)
	// in one transaction. Favorite joins and catalog places are untouched.
	Delete(ctx context.Context, id int64) error
}
