package repository

import (
	"context"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
)

type BudgetRepository interface {
	// Upsert creates the itinerary's 1:1 budget or updates the existing one.
	Upsert(ctx context.Context, budget *domain.Budget) error

	// GetByItinerary loads the budget with its categories and expenses.
	GetByItinerary(ctx context.Context, itineraryID int64) (*domain.Budget, error)

	AddCategory(ctx context.Context, category *domain.BudgetCategory) error
	AddExpense(ctx context.Context, expense *domain.Expense) error
}
