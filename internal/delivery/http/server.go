package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/config"
	"github.com/cassioviller/ViajeyPlanner/internal/delivery/http/handler"
	"github.com/cassioviller/ViajeyPlanner/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server with all route wiring.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	tokenParser middleware.TokenParser

	// Handlers
	authHandler      *handler.AuthHandler
	itineraryHandler *handler.ItineraryHandler
	placeHandler     *handler.PlaceHandler
	checklistHandler *handler.ChecklistHandler
	budgetHandler    *handler.BudgetHandler
	healthHandler    *handler.HealthHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokenParser middleware.TokenParser,
	authHandler *handler.AuthHandler,
	itineraryHandler *handler.ItineraryHandler,
	placeHandler *handler.PlaceHandler,
	checklistHandler *handler.ChecklistHandler,
	budgetHandler *handler.BudgetHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "ViajeyPlanner API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		tokenParser:      tokenParser,
		authHandler:      authHandler,
		itineraryHandler: itineraryHandler,
		placeHandler:     placeHandler,
		checklistHandler: checklistHandler,
		budgetHandler:    budgetHandler,
		healthHandler:    healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	api.Get("/health", s.healthHandler.Health)

	// Auth routes
	api.Post("/auth/register", s.authHandler.Register)
	api.Post("/auth/login", s.authHandler.Login)

	authRequired := middleware.Auth(s.tokenParser)
	authOptional := middleware.OptionalAuth(s.tokenParser)

	// Profile routes
	api.Get("/users/me", authRequired, s.authHandler.Me)
	api.Get("/users/me/favorites", authRequired, s.placeHandler.ListFavorites)

	// Place catalog routes. Search is public, favorites are per-user.
	api.Get("/places", s.placeHandler.Search)
	api.Post("/places/:id/favorite", authRequired, s.placeHandler.AddFavorite)
	api.Delete("/places/:id/favorite", authRequired, s.placeHandler.RemoveFavorite)

	// Itinerary routes. Reads go through optional auth so public itineraries
	// stay reachable anonymously; writes require the owner.
	api.Get("/itineraries", authRequired, s.itineraryHandler.List)
	api.Post("/itineraries", authRequired, s.itineraryHandler.Create)
	// Registered before /itineraries/:id so "share" is not captured as an id.
	api.Get("/itineraries/share/:code", s.itineraryHandler.GetByShareCode)
	api.Get("/itineraries/:id", authOptional, s.itineraryHandler.Get)
	api.Put("/itineraries/:id", authRequired, s.itineraryHandler.Update)
	api.Delete("/itineraries/:id", authRequired, s.itineraryHandler.Delete)
	api.Post("/itineraries/:id/add-place", authRequired, s.itineraryHandler.AddPlace)

	// Checklist routes
	api.Get("/itineraries/:id/checklists", authOptional, s.checklistHandler.List)
	api.Post("/itineraries/:id/checklists", authRequired, s.checklistHandler.Create)
	api.Patch("/checklists/items/:id", authRequired, s.checklistHandler.UpdateItem)

	// Budget routes
	api.Get("/itineraries/:id/budget", authOptional, s.budgetHandler.Get)
	api.Put("/itineraries/:id/budget", authRequired, s.budgetHandler.Upsert)
	api.Post("/itineraries/:id/budget/categories", authRequired, s.budgetHandler.AddCategory)
	api.Post("/itineraries/:id/budget/expenses", authRequired, s.budgetHandler.AddExpense)
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler keeps unhandled errors in the same envelope the
// application errors use.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": message,
			},
		})
	}
}
