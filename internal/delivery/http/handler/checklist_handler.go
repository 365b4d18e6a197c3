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

// ChecklistHandler serves per-itinerary checklists.
type ChecklistHandler struct {
	checklistUC *usecase.ChecklistUseCase
	logger      *zap.Logger
}

func NewChecklistHandler(checklistUC *usecase.ChecklistUseCase, logger *zap.Logger) *ChecklistHandler {
	return &ChecklistHandler{
		checklistUC: checklistUC,
		logger:      logger,
	}
}

// Create godoc
// @Summary Create a checklist for an itinerary
// @Description Copies items from a template when template_id is given
// @Tags Checklists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Itinerary ID"
// @Param request body dto.CreateChecklistRequest true "Checklist data"
// @Success 201 {object} domain.Checklist
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/checklists [post]
func (h *ChecklistHandler) Create(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateChecklistRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	checklist, err := h.checklistUC.Create(c.Context(), id, middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(checklist)
}

// List godoc
// @Summary List the checklists of an itinerary
// @Tags Checklists
// @Produce json
// @Param id path int true "Itinerary ID"
// @Success 200 {array} domain.Checklist
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/checklists [get]
func (h *ChecklistHandler) List(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	checklists, err := h.checklistUC.List(c.Context(), id, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(checklists)
}

// UpdateItem godoc
// @Summary Mark a checklist item complete or incomplete
// @Tags Checklists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body dto.UpdateChecklistItemRequest true "Completion state"
// @Success 200 {object} domain.ChecklistItem
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/checklists/items/{id} [patch]
func (h *ChecklistHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateChecklistItemRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if req.IsCompleted == nil {
		return utils.SendError(c, errors.ErrValidation.WithDetails(map[string]interface{}{
			"is_completed": "required",
		}))
	}

	item, err := h.checklistUC.SetItemCompletion(c.Context(), id, middleware.UserID(c), *req.IsCompleted)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(item)
}
