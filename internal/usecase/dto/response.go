package dto

import (
	"time"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
)

// UserResponse is the public view of an account. Never carries the hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ItinerarySummary is the list view of an itinerary. Absent dates and
// description serialize as JSON null.
type ItinerarySummary struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Destination   string           `json:"destination"`
	StartDate     *domain.Date     `json:"start_date"`
	EndDate       *domain.Date     `json:"end_date"`
	Description   *string          `json:"description"`
	IsPublic      bool             `json:"is_public"`
	CoverImageURL *string          `json:"cover_image_url"`
	ShareCode     *string          `json:"share_code,omitempty"`
}

func NewItinerarySummary(it *domain.Itinerary) *ItinerarySummary {
	return &ItinerarySummary{
		ID:            it.ID,
		Name:          it.Name,
		Destination:   it.Destination,
		StartDate:     it.StartDate,
		EndDate:       it.EndDate,
		Description:   it.Description,
		IsPublic:      it.IsPublic,
		CoverImageURL: it.CoverImageURL,
		ShareCode:     it.ShareCode,
	}
}

func NewItinerarySummaries(items []*domain.Itinerary) []*ItinerarySummary {
	out := make([]*ItinerarySummary, 0, len(items))
	for _, it := range items {
		out = append(out, NewItinerarySummary(it))
	}
	return out
}

// ActivityResponse is the detail view of one scheduled activity.
type ActivityResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	StartTime   *domain.TimeOfDay `json:"start_time"`
	EndTime     *domain.TimeOfDay `json:"end_time"`
	Type        string            `json:"type"`
	Location    *string           `json:"location"`
	Address     *string           `json:"address"`
	Cost        *float64          `json:"cost"`
}

func NewActivityResponse(a *domain.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Type:        a.Type,
		Location:    a.Location,
		Address:     a.Address,
		Cost:        a.Cost,
	}
}

// DayResponse always carries an activities array, empty when the day has none.
type DayResponse struct {
	ID         int64               `json:"id"`
	DayNumber  int                 `json:"day_number"`
	Date       *domain.Date        `json:"date"`
	Notes      *string             `json:"notes"`
	Activities []*ActivityResponse `json:"activities"`
}

func NewDayResponse(d *domain.ItineraryDay) *DayResponse {
	acts := make([]*ActivityResponse, 0, len(d.Activities))
	for _, a := range d.Activities {
		acts = append(acts, NewActivityResponse(a))
	}
	return &DayResponse{
		ID:         d.ID,
		DayNumber:  d.DayNumber,
		Date:       d.Date,
		Notes:      d.Notes,
		Activities: acts,
	}
}

// ItineraryDetail is the single-itinerary view: the summary fields plus the
// owner and the ordered day list.
type ItineraryDetail struct {
	ItinerarySummary
	UserID int64          `json:"user_id"`
	Days   []*DayResponse `json:"days"`
}

func NewItineraryDetail(it *domain.Itinerary, days []*domain.ItineraryDay) *ItineraryDetail {
	out := &ItineraryDetail{
		ItinerarySummary: *NewItinerarySummary(it),
		UserID:           it.UserID,
		Days:             make([]*DayResponse, 0, len(days)),
	}
	for _, d := range days {
		out.Days = append(out.Days, NewDayResponse(d))
	}
	return out
}

// CreateItineraryResponse acknowledges creation with the fields a client
// needs to navigate to the new itinerary.
type CreateItineraryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Message     string `json:"message"`
}

// AddPlaceResponse reports where the new activity landed.
type AddPlaceResponse struct {
	Message    string `json:"message"`
	ActivityID int64  `json:"activity_id"`
	DayID      int64  `json:"day_id"`
}

type PlaceResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Type        *string  `json:"type"`
	Rating      *float64 `json:"rating"`
	PriceLevel  *int     `json:"price_level"`
	ImageURL    *string  `json:"image_url"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func NewPlaceResponse(p *domain.Place) *PlaceResponse {
	return &PlaceResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		City:        p.City,
		Country:     p.Country,
		Type:        p.Type,
		Rating:      p.Rating,
		PriceLevel:  p.PriceLevel,
		ImageURL:    p.ImageURL,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
	}
}

func NewPlaceResponses(places []*domain.Place) []*PlaceResponse {
	out := make([]*PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, NewPlaceResponse(p))
	}
	return out
}

// BudgetResponse includes the derived spent total alongside the raw rows.
type BudgetResponse struct {
	ID          int64                    `json:"id"`
	ItineraryID int64                    `json:"itinerary_id"`
	TotalBudget *float64                 `json:"total_budget"`
	Currency    string                   `json:"currency"`
	TotalSpent  float64                  `json:"total_spent"`
	Categories  []*domain.BudgetCategory `json:"categories"`
	Expenses    []*domain.Expense        `json:"expenses"`
}

func NewBudgetResponse(b *domain.Budget) *BudgetResponse {
	categories := b.Categories
	if categories == nil {
		categories = []*domain.BudgetCategory{}
	}
	expenses := b.Expenses
	if expenses == nil {
		expenses = []*domain.Expense{}
	}
	return &BudgetResponse{
		ID:          b.ID,
		ItineraryID: b.ItineraryID,
		TotalBudget: b.TotalBudget,
		Currency:    b.Currency,
		TotalSpent:  b.TotalSpent(),
		Categories:  categories,
		Expenses:    expenses,
	}
}
