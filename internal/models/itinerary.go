package models

import "time"

// ItineraryDay is one day row of a stored itinerary. Highlights and
// Description are persisted as JSON arrays and normalized on read, so legacy
// rows holding plain or brace-wrapped strings still come back as lists.
type ItineraryDay struct {
	ID              int       `json:"id"`
	ItineraryID     int       `json:"itinerary_id"`
	DayNumber       int       `json:"day_number"`
	FromLocation    string    `json:"from_location"`
	ToLocation      string    `json:"to_location"`
	TravelTimeHours float64   `json:"travel_time_hours"`
	Highlights      []string  `json:"highlights"`
	OvernightStay   string    `json:"overnight_stay"`
	Description     []string  `json:"description"`
	CreatedBy       int       `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Itinerary is the parent record plus its ordered days.
type Itinerary struct {
	ID            int            `json:"id"`
	Title         string         `json:"title"`
	Subtitle      string         `json:"subtitle,omitempty"`
	Overview      string         `json:"overview,omitempty"`
	TripStartDate *time.Time     `json:"trip_start_date,omitempty"`
	TripEndDate   *time.Time     `json:"trip_end_date,omitempty"`
	NumAdults     int            `json:"num_adults"`
	NumChildren   int            `json:"num_children"`
	Inclusions    []string       `json:"inclusions"`
	Exclusions    []string       `json:"exclusions"`
	Terms         []string       `json:"terms"`
	CreatedBy     int            `json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Days          []ItineraryDay `json:"days"`
}

// ItinerarySummary is a list-view row. DayCount is derived from the child
// rows, never stored.
type ItinerarySummary struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	DayCount  int       `json:"day_count"`
	CreatedAt time.Time `json:"created_at"`
}

// DayForm is one day as submitted by a client. The day number is assigned
// from the slice position, never taken from the payload.
type DayForm struct {
	FromLocation    string   `json:"from_location"`
	ToLocation      string   `json:"to_location"`
	TravelTimeHours float64  `json:"travel_time_hours"`
	Highlights      []string `json:"highlights"`
	OvernightStay   string   `json:"overnight_stay"`
	Description     []string `json:"description"`
}

// SaveItineraryRequest is the create/update payload. Dates use YYYY-MM-DD.
type SaveItineraryRequest struct {
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	Overview      string    `json:"overview"`
	TripStartDate string    `json:"trip_start_date"`
	TripEndDate   string    `json:"trip_end_date"`
	NumAdults     int       `json:"num_adults"`
	NumChildren   int       `json:"num_children"`
	Inclusions    []string  `json:"inclusions"`
	Exclusions    []string  `json:"exclusions"`
	Terms         []string  `json:"terms"`
	Days          []DayForm `json:"days"`
}
