package errors

import "net/http"

var (
	ErrItineraryNotFound = New(
		"ITINERARY_NOT_FOUND",
		"Itinerary not found",
		http.StatusNotFound,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrChecklistNotFound = New(
		"CHECKLIST_NOT_FOUND",
		"Checklist not found",
		http.StatusNotFound,
	)

	ErrChecklistItemNotFound = New(
		"CHECKLIST_ITEM_NOT_FOUND",
		"Checklist item not found",
		http.StatusNotFound,
	)

	ErrBudgetNotFound = New(
		"BUDGET_NOT_FOUND",
		"Budget not found",
		http.StatusNotFound,
	)

	ErrTemplateNotFound = New(
		"TEMPLATE_NOT_FOUND",
		"Checklist template not found",
		http.StatusNotFound,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidDate = New(
		"INVALID_DATE",
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidTime = New(
		"INVALID_TIME",
		"Invalid time, expected HH:MM",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request body",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid authentication token",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrUserExists = New(
		"USER_EXISTS",
		"Username or email already in use",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
