package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/delivery/http/middleware"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/utils"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase/dto"
)

// PlaceHandler serves catalog search and per-user favorites.
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// Search godoc
// @Summary Search the place catalog
// @Description Filters by destination (case-insensitive city substring) and category tag; both are optional
// @Tags Places
// @Produce json
// @Param destination query string false "City substring"
// @Param type query string false "Category tag" Enums(hotel, restaurant, attraction, transport, other)
// @Success 200 {array} dto.PlaceResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/places [get]
func (h *PlaceHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchPlacesRequest{
		Destination: c.Query("destination"),
		Type:        c.Query("type"),
	}

	result, err := h.placeUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(result)
}

// AddFavorite godoc
// @Summary Favorite a place
// @Tags Places
// @Produce json
// @Security BearerAuth
// @Param id path int true "Place ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/places/{id}/favorite [post]
func (h *PlaceHandler) AddFavorite(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.placeUC.AddFavorite(c.Context(), middleware.UserID(c), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(utils.MessageResponse{Message: "Place added to favorites"})
}

// RemoveFavorite godoc
// @Summary Unfavorite a place
// @Tags Places
// @Produce json
// @Security BearerAuth
// @Param id path int true "Place ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/places/{id}/favorite [delete]
func (h *PlaceHandler) RemoveFavorite(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.placeUC.RemoveFavorite(c.Context(), middleware.UserID(c), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(utils.MessageResponse{Message: "Place removed from favorites"})
}

// ListFavorites godoc
// @Summary List the caller's favorite places
// @Tags Places
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.PlaceResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/users/me/favorites [get]
func (h *PlaceHandler) ListFavorites(c *fiber.Ctx) error {
	result, err := h.placeUC.ListFavorites(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(result)
}
