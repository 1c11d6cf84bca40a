package models

import "time"

// Stakeholder types
const (
	StakeholderHotel       = "HOTEL"
	StakeholderTaxi        = "TAXI"
	StakeholderTravelAgent = "TRAVEL_AGENT"
)

// Taxi sub-types
const (
	TaxiLocal   = "LOCAL"
	TaxiOutside = "OUTSIDE"
)

// Stakeholder is a business contact the agency works with. Owned per user.
type Stakeholder struct {
	ID                int       `json:"id"`
	UID               int       `json:"uid"`
	StakeholderType   string    `json:"stakeholder_type"`
	TaxiType          string    `json:"taxi_type,omitempty"` // Only for TAXI
	BusinessName      string    `json:"business_name"`
	ContactPersonName string    `json:"contact_person_name"`
	Designation       string    `json:"designation"`
	Phone             string    `json:"phone"`
	Whatsapp          string    `json:"whatsapp,omitempty"`
	AlternatePhone    string    `json:"alternate_phone,omitempty"`
	Address           string    `json:"address"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StakeholderRequest represents the create/update payload for a stakeholder
type StakeholderRequest struct {
	StakeholderType   string `json:"stakeholder_type"`
	TaxiType          string `json:"taxi_type"`
	BusinessName      string `json:"business_name"`
	ContactPersonName string `json:"contact_person_name"`
	Designation       string `json:"designation"`
	Phone             string `json:"phone"`
	Whatsapp          string `json:"whatsapp"`
	AlternatePhone    string `json:"alternate_phone"`
	Address           string `json:"address"`
}

// ValidStakeholderType reports whether t is a known stakeholder type.
func ValidStakeholderType(t string) bool {
	switch t {
	case StakeholderHotel, StakeholderTaxi, StakeholderTravelAgent:
		return true
	}
	return false
}

// ValidTaxiType reports whether t is a known taxi sub-type.
func ValidTaxiType(t string) bool {
	return t == TaxiLocal || t == TaxiOutside
}
