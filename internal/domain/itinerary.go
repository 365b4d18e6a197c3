package domain

import (
	"crypto/rand"
	"time"
)

// Activity type tags.
const (
	ActivityTypeHotel      = "hotel"
	ActivityTypeRestaurant = "restaurant"
	ActivityTypeAttraction = "attraction"
	ActivityTypeTransport  = "transport"
	ActivityTypeOther      = "other"
)

// Itinerary is a named trip plan owned by one user. Days, the optional budget
// and checklists are owned children and go away with the itinerary.
type Itinerary struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	Destination   string    `json:"destination" db:"destination"`
	StartDate     *Date     `json:"start_date" db:"start_date"`
	EndDate       *Date     `json:"end_date" db:"end_date"`
	Description   *string   `json:"description" db:"description"`
	IsPublic      bool      `json:"is_public" db:"is_public"`
	CoverImageURL *string   `json:"cover_image_url" db:"cover_image_url"`
	ShareCode     *string   `json:"share_code,omitempty" db:"share_code"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// VisibleTo reports whether a viewer may read this itinerary: the owner
// always, anyone else only when it is public.
func (i *Itinerary) VisibleTo(userID int64) bool {
	return i.IsPublic || i.UserID == userID
}

const shareCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewShareCode returns a fresh 10-character share code. Codes are unique per
// itinerary via the database constraint; collisions are practically
// impossible at this length.
func NewShareCode() string {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = shareCodeAlphabet[int(b)%len(shareCodeAlphabet)]
	}
	return string(buf)
}

// ItineraryDay is a numbered slot within an itinerary. day_number is 1-based
// and unique per itinerary.
type ItineraryDay struct {
	ID          int64       `json:"id" db:"id"`
	ItineraryID int64       `json:"itinerary_id" db:"itinerary_id"`
	DayNumber   int         `json:"day_number" db:"day_number"`
	Date        *Date       `json:"date" db:"date"`
	Notes       *string     `json:"notes" db:"notes"`
	Activities  []*Activity `json:"activities" db:"-"`
}

// Activity is a single scheduled event within a day. The place reference is
// non-owning: deleting the place must not delete the activity.
type Activity struct {
	ID               int64      `json:"id" db:"id"`
	DayID            int64      `json:"day_id" db:"day_id"`
	PlaceID          *int64     `json:"place_id,omitempty" db:"place_id"`
	Title            string     `json:"title" db:"title"`
	Description      *string    `json:"description" db:"description"`
	StartTime        *TimeOfDay `json:"start_time" db:"start_time"`
	EndTime          *TimeOfDay `json:"end_time" db:"end_time"`
	Type             string     `json:"type" db:"type"`
	Location         *string    `json:"location" db:"location"`
	Address          *string    `json:"address" db:"address"`
	Cost             *float64   `json:"cost" db:"cost"`
	BookingReference *string    `json:"booking_reference,omitempty" db:"booking_reference"`
	BookingURL       *string    `json:"booking_url,omitempty" db:"booking_url"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}
