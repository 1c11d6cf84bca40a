package models

import "time"

// Location is a destination name offered for itinerary days.
type Location struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationRequest represents the payload for adding a location
type LocationRequest struct {
	Name string `json:"name"`
}
