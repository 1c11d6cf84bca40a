package models

import "time"

// ItineraryAssignment records an itinerary being issued to a customer,
// along with the travel party and date span used for the exported document.
type ItineraryAssignment struct {
	ID              int       `json:"id"`
	ItineraryID     int       `json:"itinerary_id"`
	CustomerName    string    `json:"customer_name"`
	ContactNumber   string    `json:"contact_number"`
	WhatsappNumber  string    `json:"whatsapp_number"`
	AlternateNumber string    `json:"alternate_number,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Nights          int       `json:"nights"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	TotalPersons    int       `json:"total_persons"`
	CreatedBy       int       `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// AssignItineraryRequest is the payload for assigning an itinerary to a
// customer. Dates use YYYY-MM-DD.
type AssignItineraryRequest struct {
	CustomerName    string `json:"customer_name"`
	ContactNumber   string `json:"contact_number"`
	WhatsappNumber  string `json:"whatsapp_number"`
	AlternateNumber string `json:"alternate_number"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
}

// AssignItineraryResponse is returned after a successful assignment. The
// archive URL is set only when a document archive is configured.
type AssignItineraryResponse struct {
	Assignment *ItineraryAssignment `json:"assignment"`
	PDFName    string               `json:"pdf_name"`
	ArchiveURL string               `json:"archive_url,omitempty"`
}
