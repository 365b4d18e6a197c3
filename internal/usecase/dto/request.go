package dto

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateItineraryRequest carries the POST /itineraries body. Dates arrive as
// ISO 8601 strings and are parsed before anything is written.
type CreateItineraryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Destination string `json:"destination" validate:"required,max=100"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description" validate:"omitempty"`
	IsPublic    bool   `json:"is_public"`
}

// UpdateItineraryRequest carries the PUT /itineraries/:id body. Every field
// is optional; absent fields keep their stored value.
type UpdateItineraryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Destination *string `json:"destination" validate:"omitempty,min=1,max=100"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

// AddPlaceRequest attaches a place (or a free-form activity) to an itinerary.
type AddPlaceRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Type        string   `json:"type" validate:"omitempty,oneof=hotel restaurant attraction transport other"`
	Location    string   `json:"location" validate:"omitempty,max=100"`
	Address     string   `json:"address" validate:"omitempty,max=255"`
	Cost        *float64 `json:"cost" validate:"omitempty,gte=0"`
	PlaceID     *int64   `json:"place_id"`
	DayNumber   int      `json:"day_number" validate:"omitempty,min=1"`
}

// SearchPlacesRequest mirrors the GET /places query parameters.
type SearchPlacesRequest struct {
	Destination string `json:"destination"`
	Type        string `json:"type" validate:"omitempty,oneof=hotel restaurant attraction transport other"`
}

type UpsertBudgetRequest struct {
	TotalBudget *float64 `json:"total_budget" validate:"required,gte=0"`
	Currency    string   `json:"currency" validate:"omitempty,len=3,alpha"`
}

type AddBudgetCategoryRequest struct {
	Name          string   `json:"name" validate:"required,max=50"`
	PlannedAmount *float64 `json:"planned_amount" validate:"omitempty,gte=0"`
	Color         string   `json:"color" validate:"omitempty,hexcolor"`
}

type AddExpenseRequest struct {
	Description   string   `json:"description" validate:"required,max=255"`
	Amount        float64  `json:"amount" validate:"required,gt=0"`
	Date          string   `json:"date"`
	PaymentMethod string   `json:"payment_method" validate:"omitempty,max=50"`
	CategoryID    *int64   `json:"category_id"`
	ActivityID    *int64   `json:"activity_id"`
	IsPaid        *bool    `json:"is_paid"`
}

type ChecklistItemInput struct {
	Text     string `json:"text" validate:"required,max=255"`
	Priority int    `json:"priority" validate:"omitempty,oneof=0 1 2"`
}

// CreateChecklistRequest creates a checklist, either from scratch with
// explicit items or instantiated from a template.
type CreateChecklistRequest struct {
	Name        string               `json:"name" validate:"required_without=TemplateID,max=100"`
	Description string               `json:"description"`
	TemplateID  *int64               `json:"template_id"`
	Items       []ChecklistItemInput `json:"items" validate:"omitempty,dive"`
}

type UpdateChecklistItemRequest struct {
	IsCompleted *bool `json:"is_completed" validate:"required"`
}
