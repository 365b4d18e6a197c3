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

// AuthHandler serves registration, login and the current profile.
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Creates a user account and returns a bearer token for immediate use
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account data"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.authUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(resp)
}

// Me godoc
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/users/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	profile, err := h.authUC.GetProfile(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(profile)
}
