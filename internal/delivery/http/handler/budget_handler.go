package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/delivery/http/middleware"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/utils"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase/dto"
)

// BudgetHandler serves the itinerary budget with its categories and expenses.
type BudgetHandler struct {
	budgetUC *usecase.BudgetUseCase
	logger   *zap.Logger
}

func NewBudgetHandler(budgetUC *usecase.BudgetUseCase, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetUC: budgetUC,
		logger:   logger,
	}
}

// Upsert godoc
// @Summary Set the itinerary budget
// @Description Creates the budget on first write, updates it afterwards
// @Tags Budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Itinerary ID"
// @Param request body dto.UpsertBudgetRequest true "Budget data"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/budget [put]
func (h *BudgetHandler) Upsert(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpsertBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.budgetUC.Upsert(c.Context(), id, middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary Itinerary budget with derived totals
// @Tags Budget
// @Produce json
// @Param id path int true "Itinerary ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/budget [get]
func (h *BudgetHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.budgetUC.Get(c.Context(), id, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(resp)
}

// AddCategory godoc
// @Summary Add a planned spending category
// @Tags Budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Itinerary ID"
// @Param request body dto.AddBudgetCategoryRequest true "Category data"
// @Success 201 {object} domain.BudgetCategory
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/budget/categories [post]
func (h *BudgetHandler) AddCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AddBudgetCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	category, err := h.budgetUC.AddCategory(c.Context(), id, middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// AddExpense godoc
// @Summary Record an expense
// @Tags Budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Itinerary ID"
// @Param request body dto.AddExpenseRequest true "Expense data"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/budget/expenses [post]
func (h *BudgetHandler) AddExpense(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AddExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	expense, err := h.budgetUC.AddExpense(c.Context(), id, middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}
