package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
)

// MockItineraryRepository is a mock of ItineraryRepository
type MockItineraryRepository struct {
	mock.Mock
}

func (m *MockItineraryRepository) Create(ctx context.Context, itinerary *domain.Itinerary) error {
	args := m.Called(ctx, itinerary)
	return args.Error(0)
}

func (m *MockItineraryRepository) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Itinerary), args.Error(1)
}

func (m *MockItineraryRepository) GetByShareCode(ctx context.Context, code string) (*domain.Itinerary, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Itinerary), args.Error(1)
}

func (m *MockItineraryRepository) Update(ctx context.Context, itinerary *domain.Itinerary) error {
	args := m.Called(ctx, itinerary)
	return args.Error(0)
}

func (m *MockItineraryRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Itinerary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Itinerary), args.Error(1)
}

func (m *MockItineraryRepository) GetDaysWithActivities(ctx context.Context, itineraryID int64) ([]*domain.ItineraryDay, error) {
	args := m.Called(ctx, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ItineraryDay), args.Error(1)
}

func (m *MockItineraryRepository) AttachActivity(ctx context.Context, itineraryID int64, dayNumber int, dayDate *domain.Date, activity *domain.Activity) (*repository.AttachActivityResult, error) {
	args := m.Called(ctx, itineraryID, dayNumber, dayDate, activity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AttachActivityResult), args.Error(1)
}

func (m *MockItineraryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) Search(ctx context.Context, destination string, types []string) ([]*domain.Place, error) {
	args := m.Called(ctx, destination, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) AddFavorite(ctx context.Context, userID, placeID int64) error {
	args := m.Called(ctx, userID, placeID)
	return args.Error(0)
}

func (m *MockPlaceRepository) RemoveFavorite(ctx context.Context, userID, placeID int64) error {
	args := m.Called(ctx, userID, placeID)
	return args.Error(0)
}

func (m *MockPlaceRepository) ListFavorites(ctx context.Context, userID int64) ([]*domain.Place, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	args := m.Called(ctx, email, username)
	return args.Bool(0), args.Error(1)
}

// MockChecklistRepository is a mock of ChecklistRepository
type MockChecklistRepository struct {
	mock.Mock
}

func (m *MockChecklistRepository) Create(ctx context.Context, checklist *domain.Checklist) error {
	args := m.Called(ctx, checklist)
	return args.Error(0)
}

func (m *MockChecklistRepository) ListByItinerary(ctx context.Context, itineraryID int64) ([]*domain.Checklist, error) {
	args := m.Called(ctx, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Checklist), args.Error(1)
}

func (m *MockChecklistRepository) GetTemplate(ctx context.Context, id int64) (*domain.ChecklistTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChecklistTemplate), args.Error(1)
}

func (m *MockChecklistRepository) SetItemCompletion(ctx context.Context, itemID, ownerID int64, completed bool) (*domain.ChecklistItem, error) {
	args := m.Called(ctx, itemID, ownerID, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChecklistItem), args.Error(1)
}

// MockBudgetRepository is a mock of BudgetRepository
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) Upsert(ctx context.Context, budget *domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) GetByItinerary(ctx context.Context, itineraryID int64) (*domain.Budget, error) {
	args := m.Called(ctx, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) AddCategory(ctx context.Context, category *domain.BudgetCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockBudgetRepository) AddExpense(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func ptrString(s string) *string    { return &s }
func ptrBool(b bool) *bool          { return &b }
func ptrFloat64(f float64) *float64 { return &f }
func ptrInt64(i int64) *int64       { return &i }
func ptrDate(d domain.Date) *domain.Date {
	return &d
}
