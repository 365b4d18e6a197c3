package domain

import "time"

// Place is a catalog entry independent of any itinerary, reusable across
// activities and user favorites.
type Place struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Address     *string   `json:"address" db:"address"`
	City        *string   `json:"city" db:"city"`
	Country     *string   `json:"country" db:"country"`
	Type        *string   `json:"type" db:"type"`
	Rating      *float64  `json:"rating" db:"rating"`
	PriceLevel  *int      `json:"price_level" db:"price_level"` // 1-4, representing $-$$$$
	ImageURL    *string   `json:"image_url" db:"image_url"`
	Website     *string   `json:"website,omitempty" db:"website"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	Latitude    *float64  `json:"latitude" db:"latitude"`
	Longitude   *float64  `json:"longitude" db:"longitude"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
