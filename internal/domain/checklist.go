package domain

import "time"

// Checklist item priorities.
const (
	PriorityLow    = 0
	PriorityMedium = 1
	PriorityHigh   = 2
)

// Checklist template type tags.
const (
	TemplateTypePacking     = "packing"
	TemplateTypePreparation = "preparation"
	TemplateTypeActivity    = "activity"
)

// Checklist belongs to one itinerary and optionally records the template it
// was instantiated from.
type Checklist struct {
	ID          int64            `json:"id" db:"id"`
	ItineraryID int64            `json:"itinerary_id" db:"itinerary_id"`
	TemplateID  *int64           `json:"template_id,omitempty" db:"template_id"`
	Name        string           `json:"name" db:"name"`
	Description *string          `json:"description" db:"description"`
	Items       []*ChecklistItem `json:"items" db:"-"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}

type ChecklistItem struct {
	ID          int64      `json:"id" db:"id"`
	ChecklistID int64      `json:"checklist_id" db:"checklist_id"`
	Text        string     `json:"text" db:"text"`
	IsCompleted bool       `json:"is_completed" db:"is_completed"`
	Priority    int        `json:"priority" db:"priority"`
	CompletedAt *time.Time `json:"completed_at" db:"completed_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// ChecklistTemplate is a reusable checklist owned by its creator. Instances
// copy the template items; later template edits do not touch instances.
type ChecklistTemplate struct {
	ID          int64                    `json:"id" db:"id"`
	UserID      int64                    `json:"user_id" db:"user_id"`
	Name        string                   `json:"name" db:"name"`
	Description *string                  `json:"description" db:"description"`
	IsPublic    bool                     `json:"is_public" db:"is_public"`
	Type        *string                  `json:"type" db:"type"`
	Items       []*ChecklistTemplateItem `json:"items" db:"-"`
	CreatedAt   time.Time                `json:"created_at" db:"created_at"`
}

type ChecklistTemplateItem struct {
	ID         int64  `json:"id" db:"id"`
	TemplateID int64  `json:"template_id" db:"template_id"`
	Text       string `json:"text" db:"text"`
	Priority   int    `json:"priority" db:"priority"`
}
