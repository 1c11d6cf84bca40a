// Package pdf turns a stored itinerary into the customer-facing document.
// Projection, markup and rendering are split so the document model can be
// tested without touching the renderer.
package pdf

import (
	"fmt"
	"strings"

	"tripdesk/internal/models"
	"tripdesk/internal/timeutil"
)

// Document is the flattened, display-ready form of an itinerary. Every field
// is already formatted; empty optional fields are omitted from output.
type Document struct {
	Title      string
	Subtitle   string
	Overview   string
	DateRange  string
	Party      string
	Customer   CustomerInfo
	Days       []DayInfo
	Inclusions []string
	Exclusions []string
	Terms      []string
	Agency     AgencyInfo
}

type CustomerInfo struct {
	Name    string
	Contact string
	Nights  int
}

type DayInfo struct {
	Number        int
	Heading       string
	Route         string
	TravelTime    string
	Highlights    []string
	OvernightStay string
	Description   []string
}

type AgencyInfo struct {
	Name     string
	Owner    string
	Phone    string
	Whatsapp string
	Email    string
	Address  string
	Website  string
}

// Project builds the document model from an itinerary, the issuing agency and
// an optional customer assignment.
func Project(it *models.Itinerary, agency *models.AgencyDetails, assignment *models.ItineraryAssignment) *Document {
	doc := &Document{
		Title:      it.Title,
		Subtitle:   it.Subtitle,
		Overview:   it.Overview,
		Inclusions: it.Inclusions,
		Exclusions: it.Exclusions,
		Terms:      it.Terms,
	}

	if it.TripStartDate != nil && it.TripEndDate != nil {
		doc.DateRange = fmt.Sprintf("%s to %s",
			timeutil.FormatDate(*it.TripStartDate), timeutil.FormatDate(*it.TripEndDate))
	}

	doc.Party = partyLine(it.NumAdults, it.NumChildren)

	if assignment != nil {
		doc.Customer = CustomerInfo{
			Name:    assignment.CustomerName,
			Contact: assignment.ContactNumber,
			Nights:  assignment.Nights,
		}
		doc.DateRange = fmt.Sprintf("%s to %s",
			timeutil.FormatDate(assignment.StartDate), timeutil.FormatDate(assignment.EndDate))
		doc.Party = partyLine(assignment.Adults, assignment.Children)
	}

	for _, d := range it.Days {
		info := DayInfo{
			Number:        d.DayNumber,
			Heading:       fmt.Sprintf("Day %d", d.DayNumber),
			Highlights:    d.Highlights,
			OvernightStay: d.OvernightStay,
			Description:   d.Description,
		}
		info.Route = routeLine(d.FromLocation, d.ToLocation)
		if d.TravelTimeHours > 0 {
			info.TravelTime = formatHours(d.TravelTimeHours)
		}
		doc.Days = append(doc.Days, info)
	}

	if agency != nil {
		doc.Agency = AgencyInfo{
			Name:     agency.AgencyName,
			Owner:    agency.OwnerName,
			Phone:    agency.Phone,
			Whatsapp: agency.Whatsapp,
			Email:    agency.Email,
			Address:  agencyAddress(agency),
			Website:  agency.Website,
		}
	}

	return doc
}

func partyLine(adults, children int) string {
	if adults <= 0 && children <= 0 {
		return ""
	}
	parts := []string{}
	if adults > 0 {
		parts = append(parts, plural(adults, "Adult"))
	}
	if children > 0 {
		parts = append(parts, plural(children, "Child", "Children"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, singular string, pluralForm ...string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	if len(pluralForm) > 0 {
		return fmt.Sprintf("%d %s", n, pluralForm[0])
	}
	return fmt.Sprintf("%d %ss", n, singular)
}

func routeLine(from, to string) string {
	switch {
	case from != "" && to != "" && from != to:
		return fmt.Sprintf("%s to %s", from, to)
	case from != "":
		return from
	default:
		return to
	}
}

func formatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%d hrs", int(h))
	}
	return fmt.Sprintf("%.1f hrs", h)
}

func agencyAddress(a *models.AgencyDetails) string {
	parts := []string{}
	for _, p := range []string{a.Address, a.City, a.State, a.Country, a.PostalCode} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
