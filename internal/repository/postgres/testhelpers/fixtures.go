package testhelpers

import (
	"testing"

	"github.com/jmoiron/sqlx"
)

// Seed helpers for repository suites. Each returns the generated id.

func InsertUser(t *testing.T, db *sqlx.DB, email, username string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`
		INSERT INTO users (email, username, password_hash)
		VALUES ($1, $2, 'x')
		RETURNING id
	`, email, username).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}
	return id
}

func InsertPlace(t *testing.T, db *sqlx.DB, name, city, placeType string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`
		INSERT INTO places (name, city, type)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, city, placeType).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert place: %v", err)
	}
	return id
}

func InsertItinerary(t *testing.T, db *sqlx.DB, userID int64, name, destination string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`
		INSERT INTO itineraries (user_id, name, destination)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userID, name, destination).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert itinerary: %v", err)
	}
	return id
}

func InsertFavorite(t *testing.T, db *sqlx.DB, userID, placeID int64) {
	t.Helper()
	if _, err := db.Exec(`
		INSERT INTO user_favorites (user_id, place_id) VALUES ($1, $2)
	`, userID, placeID); err != nil {
		t.Fatalf("failed to insert favorite: %v", err)
	}
}

func CountRows(t *testing.T, db *sqlx.DB, query string, args ...interface{}) int {
	t.Helper()
	var n int
	if err := db.Get(&n, query, args...); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
