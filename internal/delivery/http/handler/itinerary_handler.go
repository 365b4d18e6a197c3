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

// ItineraryHandler serves the itinerary collection and the add-place flow.
type ItineraryHandler struct {
	itineraryUC *usecase.ItineraryUseCase
	activityUC  *usecase.ActivityUseCase
	logger      *zap.Logger
}

func NewItineraryHandler(
	itineraryUC *usecase.ItineraryUseCase,
	activityUC *usecase.ActivityUseCase,
	logger *zap.Logger,
) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: itineraryUC,
		activityUC:  activityUC,
		logger:      logger,
	}
}

// List godoc
// @Summary List the caller's itineraries
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ItinerarySummary
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/itineraries [get]
func (h *ItineraryHandler) List(c *fiber.Ctx) error {
	summaries, err := h.itineraryUC.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(summaries)
}

// Create godoc
// @Summary Create an itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateItineraryRequest true "Itinerary data"
// @Success 200 {object} dto.CreateItineraryResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/itineraries [post]
func (h *ItineraryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.itineraryUC.Create(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update an itinerary
// @Description Overwrites the fields present in the body; only the owner may update
// @Tags Itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Itinerary ID"
// @Param request body dto.UpdateItineraryRequest true "Fields to change"
// @Success 200 {object} dto.ItinerarySummary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id} [put]
func (h *ItineraryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	summary, err := h.itineraryUC.Update(c.Context(), id, middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(summary)
}

// GetByShareCode godoc
// @Summary Itinerary detail by share code
// @Description The share code alone grants read access; no authentication required
// @Tags Itineraries
// @Produce json
// @Param code path string true "Share code"
// @Success 200 {object} dto.ItineraryDetail
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/share/{code} [get]
func (h *ItineraryHandler) GetByShareCode(c *fiber.Ctx) error {
	detail, err := h.itineraryUC.GetByShareCode(c.Context(), c.Params("code"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(detail)
}

// Get godoc
// @Summary Itinerary detail with days and activities
// @Description Returns the itinerary when it is public or owned by the caller; otherwise 404
// @Tags Itineraries
// @Produce json
// @Param id path int true "Itinerary ID"
// @Success 200 {object} dto.ItineraryDetail
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id} [get]
func (h *ItineraryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	detail, err := h.itineraryUC.Get(c.Context(), id, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(detail)
}

// Delete godoc
// @Summary Delete an itinerary and everything it owns
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Itinerary ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id} [delete]
func (h *ItineraryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.itineraryUC.Delete(c.Context(), id, middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(utils.MessageResponse{Message: "Itinerary deleted successfully"})
}

// AddPlace godoc
// @Summary Add a place or activity to an itinerary day
// @Description Creates the day on first use; a dangling place_id degrades to an unlinked activity
// @Tags Itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Itinerary ID"
// @Param request body dto.AddPlaceRequest true "Activity data"
// @Success 200 {object} dto.AddPlaceResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/add-place [post]
func (h *ItineraryHandler) AddPlace(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AddPlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.activityUC.AddPlace(c.Context(), id, middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(resp)
}
