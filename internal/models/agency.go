package models

import "time"

// AgencyDetails holds the agency profile printed on exported itinerary
// documents. One row per owning user, upserted on save.
type AgencyDetails struct {
	ID                 int       `json:"id"`
	UID                int       `json:"uid"`
	AgencyName         string    `json:"agency_name"`
	OwnerName          string    `json:"owner_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Whatsapp           string    `json:"whatsapp"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Country            string    `json:"country"`
	PostalCode         string    `json:"postal_code"`
	Website            string    `json:"website,omitempty"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SaveAgencyDetailsRequest represents the upsert payload for agency details
type SaveAgencyDetailsRequest struct {
	AgencyName         string `json:"agency_name"`
	OwnerName          string `json:"owner_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Whatsapp           string `json:"whatsapp"`
	Address            string `json:"address"`
	City               string `json:"city"`
	State              string `json:"state"`
	Country            string `json:"country"`
	PostalCode         string `json:"postal_code"`
	Website            string `json:"website"`
	RegistrationNumber string `json:"registration_number"`
}
