package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/validator"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase/dto"
)

// BudgetUseCase manages the 1:1 itinerary budget with its categories and
// expenses.
type BudgetUseCase struct {
	budgetRepo    repository.BudgetRepository
	itineraryRepo repository.ItineraryRepository
	logger        *zap.Logger
}

func NewBudgetUseCase(
	budgetRepo repository.BudgetRepository,
	itineraryRepo repository.ItineraryRepository,
	logger *zap.Logger,
) *BudgetUseCase {
	return &BudgetUseCase{
		budgetRepo:    budgetRepo,
		itineraryRepo: itineraryRepo,
		logger:        logger,
	}
}

// Upsert sets the itinerary budget, creating it on first write. Owner only.
func (uc *BudgetUseCase) Upsert(ctx context.Context, itineraryID, userID int64, req dto.UpsertBudgetRequest) (*dto.BudgetResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if err := uc.requireOwner(ctx, itineraryID, userID); err != nil {
		return nil, err
	}

	budget := &domain.Budget{
		ItineraryID: itineraryID,
		TotalBudget: req.TotalBudget,
		Currency:    req.Currency,
	}
	if budget.Currency == "" {
		budget.Currency = domain.DefaultCurrency
	}

	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		uc.logger.Error("Failed to upsert budget", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, err
	}

	return uc.loadResponse(ctx, itineraryID)
}

// Get returns the budget with its derived spent total. Visible to anyone who
// may read the itinerary.
func (uc *BudgetUseCase) Get(ctx context.Context, itineraryID, viewerID int64) (*dto.BudgetResponse, error) {
	itinerary, err := uc.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	if !itinerary.VisibleTo(viewerID) {
		return nil, errors.ErrItineraryNotFound
	}

	return uc.loadResponse(ctx, itineraryID)
}

// AddCategory adds a planned spending bucket to an existing budget.
func (uc *BudgetUseCase) AddCategory(ctx context.Context, itineraryID, userID int64, req dto.AddBudgetCategoryRequest) (*domain.BudgetCategory, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if err := uc.requireOwner(ctx, itineraryID, userID); err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.GetByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	category := &domain.BudgetCategory{
		BudgetID:      budget.ID,
		Name:          req.Name,
		PlannedAmount: req.PlannedAmount,
		Color:         optionalString(req.Color),
	}
	if err := uc.budgetRepo.AddCategory(ctx, category); err != nil {
		uc.logger.Error("Failed to add budget category", zap.Int64("budget_id", budget.ID), zap.Error(err))
		return nil, err
	}
	return category, nil
}

// AddExpense records an expense against an existing budget.
func (uc *BudgetUseCase) AddExpense(ctx context.Context, itineraryID, userID int64, req dto.AddExpenseRequest) (*domain.Expense, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	date, err := parseOptionalDate(req.Date, "date")
	if err != nil {
		return nil, err
	}

	if err := uc.requireOwner(ctx, itineraryID, userID); err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.GetByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		BudgetID:      budget.ID,
		CategoryID:    req.CategoryID,
		ActivityID:    req.ActivityID,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          date,
		PaymentMethod: optionalString(req.PaymentMethod),
	}
	if req.IsPaid != nil {
		expense.IsPaid = *req.IsPaid
	}

	if err := uc.budgetRepo.AddExpense(ctx, expense); err != nil {
		uc.logger.Error("Failed to add expense", zap.Int64("budget_id", budget.ID), zap.Error(err))
		return nil, err
	}
	return expense, nil
}

func (uc *BudgetUseCase) requireOwner(ctx context.Context, itineraryID, userID int64) error {
	itinerary, err := uc.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return err
	}
	if itinerary.UserID != userID {
		return errors.ErrItineraryNotFound
	}
	return nil
}

func (uc *BudgetUseCase) loadResponse(ctx context.Context, itineraryID int64) (*dto.BudgetResponse, error) {
	budget, err := uc.budgetRepo.GetByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	return dto.NewBudgetResponse(budget), nil
}
