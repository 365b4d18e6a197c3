// Package docs ViajeyPlanner API.
//
// Travel itinerary planning service. Users build day-by-day trip plans
// from a shared place catalog, track packing checklists and trip budgets,
// and share finished itineraries publicly.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	SecurityDefinitions:
//	BearerAuth:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
