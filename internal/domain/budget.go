package domain

import "time"

// DefaultCurrency is the ISO 4217 code assumed when none is supplied.
const DefaultCurrency = "BRL"

// Budget is owned 1:1 by an itinerary. Categories and expenses go away with
// the budget.
type Budget struct {
	ID          int64             `json:"id" db:"id"`
	ItineraryID int64             `json:"itinerary_id" db:"itinerary_id"`
	TotalBudget *float64          `json:"total_budget" db:"total_budget"`
	Currency    string            `json:"currency" db:"currency"`
	Categories  []*BudgetCategory `json:"categories" db:"-"`
	Expenses    []*Expense        `json:"expenses" db:"-"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// TotalSpent sums every expense attached to the budget.
func (b *Budget) TotalSpent() float64 {
	var total float64
	for _, e := range b.Expenses {
		total += e.Amount
	}
	return total
}

type BudgetCategory struct {
	ID            int64    `json:"id" db:"id"`
	BudgetID      int64    `json:"budget_id" db:"budget_id"`
	Name          string   `json:"name" db:"name"`
	PlannedAmount *float64 `json:"planned_amount" db:"planned_amount"`
	Color         *string  `json:"color" db:"color"` // hex color code
}

// Expense optionally references a category and an activity; both references
// are non-owning.
type Expense struct {
	ID              int64     `json:"id" db:"id"`
	BudgetID        int64     `json:"budget_id" db:"budget_id"`
	CategoryID      *int64    `json:"category_id" db:"category_id"`
	ActivityID      *int64    `json:"activity_id" db:"activity_id"`
	Description     string    `json:"description" db:"description"`
	Amount          float64   `json:"amount" db:"amount"`
	Date            *Date     `json:"date" db:"date"`
	PaymentMethod   *string   `json:"payment_method" db:"payment_method"`
	ReceiptImageURL *string   `json:"receipt_image_url,omitempty" db:"receipt_image_url"`
	IsPaid          bool      `json:"is_paid" db:"is_paid"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
