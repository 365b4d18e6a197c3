package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
)

type budgetRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBudgetRepository(db *DB) repository.BudgetRepository {
	return &budgetRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *budgetRepository) Upsert(ctx context.Context, budget *domain.Budget) error {
	if budget.Currency == "" {
		budget.Currency = domain.DefaultCurrency
	}

	query := `
		INSERT INTO budgets (itinerary_id, total_budget, currency)
		VALUES ($1, $2, $3)
		ON CONFLICT (itinerary_id)
		DO UPDATE SET total_budget = EXCLUDED.total_budget,
		              currency = EXCLUDED.currency,
		              updated_at = now()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		budget.ItineraryID,
		budget.TotalBudget,
		budget.Currency,
	).Scan(&budget.ID, &budget.CreatedAt, &budget.UpdatedAt)

	if err != nil {
		r.logger.Error("Failed to upsert budget", zap.Int64("itinerary_id", budget.ItineraryID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *budgetRepository) GetByItinerary(ctx context.Context, itineraryID int64) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.db.GetContext(ctx, &budget, `
		SELECT id, itinerary_id, total_budget, currency, created_at, updated_at
		FROM budgets
		WHERE itinerary_id = $1
	`, itineraryID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrBudgetNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get budget", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	budget.Categories = []*domain.BudgetCategory{}
	err = r.db.SelectContext(ctx, &budget.Categories, `
		SELECT id, budget_id, name, planned_amount, color
		FROM budget_categories
		WHERE budget_id = $1
		ORDER BY id
	`, budget.ID)
	if err != nil {
		r.logger.Error("Failed to get budget categories", zap.Int64("budget_id", budget.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	budget.Expenses = []*domain.Expense{}
	err = r.db.SelectContext(ctx, &budget.Expenses, `
		SELECT id, budget_id, category_id, activity_id, description, amount, date,
		       payment_method, receipt_image_url, is_paid, created_at
		FROM expenses
		WHERE budget_id = $1
		ORDER BY id
	`, budget.ID)
	if err != nil {
		r.logger.Error("Failed to get expenses", zap.Int64("budget_id", budget.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &budget, nil
}

func (r *budgetRepository) AddCategory(ctx context.Context, category *domain.BudgetCategory) error {
	query := `
		INSERT INTO budget_categories (budget_id, name, planned_amount, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		category.BudgetID,
		category.Name,
		category.PlannedAmount,
		category.Color,
	).Scan(&category.ID)

	if err != nil {
		r.logger.Error("Failed to add budget category", zap.Int64("budget_id", category.BudgetID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *budgetRepository) AddExpense(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (budget_id, category_id, activity_id, description, amount, date, payment_method, receipt_image_url, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		expense.BudgetID,
		expense.CategoryID,
		expense.ActivityID,
		expense.Description,
		expense.Amount,
		expense.Date,
		expense.PaymentMethod,
		expense.ReceiptImageURL,
		expense.IsPaid,
	).Scan(&expense.ID, &expense.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to add expense", zap.Int64("budget_id", expense.BudgetID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
