package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	"github.com/cassioviller/ViajeyPlanner/internal/repository/postgres"
)

// Constructors wiring a bare test connection into the repository layer.

func NewItineraryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ItineraryRepository {
	return postgres.NewItineraryRepository(postgres.NewDBForTest(db, logger))
}

func NewPlaceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlaceRepository {
	return postgres.NewPlaceRepository(postgres.NewDBForTest(db, logger))
}

func NewUserRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.UserRepository {
	return postgres.NewUserRepository(postgres.NewDBForTest(db, logger))
}

func NewChecklistRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ChecklistRepository {
	return postgres.NewChecklistRepository(postgres.NewDBForTest(db, logger))
}

func NewBudgetRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.BudgetRepository {
	return postgres.NewBudgetRepository(postgres.NewDBForTest(db, logger))
}
