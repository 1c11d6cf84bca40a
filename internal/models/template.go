package models

import "time"

// TemplateMaster is a per-day building block keyed by district. The admin
// curates these and they pre-fill day forms when composing an itinerary.
type TemplateMaster struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	District      string    `json:"district"`
	TemplateTitle string    `json:"template_title"`
	TravelTime    string    `json:"travel_time"`
	Description   string    `json:"description"`
	OvernightStay string    `json:"overnight_stay,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TemplateMasterRequest represents the create/update payload for a day template
type TemplateMasterRequest struct {
	District      string `json:"district"`
	TemplateTitle string `json:"template_title"`
	TravelTime    string `json:"travel_time"`
	Description   string `json:"description"`
	OvernightStay string `json:"overnight_stay"`
}

// TemplateDay is one pre-filled day inside a stored itinerary template.
type TemplateDay struct {
	FromLocation    string   `json:"from_location"`
	ToLocation      string   `json:"to_location"`
	TravelTimeHours float64  `json:"travel_time_hours"`
	Highlights      []string `json:"highlights"`
	OvernightStay   string   `json:"overnight_stay"`
	Description     []string `json:"description"`
}

// ItineraryTemplate is a reusable multi-day plan that seeds a new itinerary.
type ItineraryTemplate struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	DefaultDays []TemplateDay `json:"default_days"`
	CreatedBy   int           `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ItineraryTemplateRequest represents the create/update payload for a template
type ItineraryTemplateRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DefaultDays []TemplateDay `json:"default_days"`
}
