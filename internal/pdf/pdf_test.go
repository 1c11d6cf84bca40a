package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleItinerary() *models.Itinerary {
	return &models.Itinerary{
		ID:            7,
		Title:         "Sikkim Explorer",
		Subtitle:      "5 Days of Mountains",
		Overview:      "A relaxed circuit covering Gangtok and North Sikkim.",
		TripStartDate: date(2026, time.October, 10),
		TripEndDate:   date(2026, time.October, 14),
		NumAdults:     2,
		NumChildren:   1,
		Inclusions:    []string{"Hotel stays", "All transfers"},
		Exclusions:    []string{"Airfare"},
		Terms:         []string{"50% advance to confirm"},
		Days: []models.ItineraryDay{
			{
				DayNumber:       1,
				FromLocation:    "Bagdogra",
				ToLocation:      "Gangtok",
				TravelTimeHours: 4.5,
				Highlights:      []string{"Airport pickup", "Evening at MG Marg"},
				OvernightStay:   "Gangtok",
				Description:     []string{"Arrive and transfer to Gangtok."},
			},
			{
				DayNumber:     2,
				FromLocation:  "Gangtok",
				ToLocation:    "Gangtok",
				Highlights:    []string{"Tsomgo Lake"},
				OvernightStay: "Gangtok",
			},
		},
	}
}

func sampleAgency() *models.AgencyDetails {
	return &models.AgencyDetails{
		AgencyName: "Himalaya Trails",
		OwnerName:  "T. Bhutia",
		Email:      "hello@himalayatrails.example",
		Phone:      "9812345678",
		Whatsapp:   "9812345678",
		Address:    "MG Marg",
		City:       "Gangtok",
		State:      "Sikkim",
		Country:    "India",
		PostalCode: "737101",
	}
}

func TestProjectBasics(t *testing.T) {
	doc := Project(sampleItinerary(), sampleAgency(), nil)

	assert.Equal(t, "Sikkim Explorer", doc.Title)
	assert.Equal(t, "10/10/2026 to 14/10/2026", doc.DateRange)
	assert.Equal(t, "2 Adults, 1 Child", doc.Party)
	require.Len(t, doc.Days, 2)
	assert.Equal(t, "Day 1", doc.Days[0].Heading)
	assert.Equal(t, "Bagdogra to Gangtok", doc.Days[0].Route)
	assert.Equal(t, "4.5 hrs", doc.Days[0].TravelTime)
	// Same from and to collapses to one name, zero hours is omitted
	assert.Equal(t, "Gangtok", doc.Days[1].Route)
	assert.Empty(t, doc.Days[1].TravelTime)
	assert.Equal(t, "Himalaya Trails", doc.Agency.Name)
	assert.Contains(t, doc.Agency.Address, "Gangtok")
}

func TestProjectAssignmentOverridesTripMeta(t *testing.T) {
	assignment := &models.ItineraryAssignment{
		CustomerName:   "R. Sharma",
		ContactNumber:  "9900112233",
		WhatsappNumber: "9900112233",
		StartDate:      time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, time.November, 5, 0, 0, 0, 0, time.UTC),
		Nights:         4,
		Adults:         3,
		Children:       0,
	}

	doc := Project(sampleItinerary(), sampleAgency(), assignment)

	assert.Equal(t, "R. Sharma", doc.Customer.Name)
	assert.Equal(t, 4, doc.Customer.Nights)
	assert.Equal(t, "01/11/2026 to 05/11/2026", doc.DateRange)
	assert.Equal(t, "3 Adults", doc.Party)
}

func TestProjectOmitsEmptyOptionals(t *testing.T) {
	it := &models.Itinerary{Title: "Bare Trip"}
	doc := Project(it, nil, nil)

	assert.Empty(t, doc.Subtitle)
	assert.Empty(t, doc.DateRange)
	assert.Empty(t, doc.Party)
	assert.Empty(t, doc.Agency.Name)
}

func TestBuildMarkupDeterministic(t *testing.T) {
	doc := Project(sampleItinerary(), sampleAgency(), nil)

	first, err := BuildMarkup(doc)
	require.NoError(t, err)
	second, err := BuildMarkup(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, string(first), "Sikkim Explorer")
	assert.Contains(t, string(first), "Day 1")
	assert.Contains(t, string(first), "Himalaya Trails")
}

func TestBuildMarkupEscapes(t *testing.T) {
	it := &models.Itinerary{Title: "Trip <script>alert(1)</script>"}
	out, err := BuildMarkup(Project(it, nil, nil))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>alert")
}

func TestRenderProducesPDF(t *testing.T) {
	doc := Project(sampleItinerary(), sampleAgency(), nil)

	out, err := Render(doc)
	require.NoError(t, err)
	assert.True(t, len(out) > 500)
	assert.Equal(t, "%PDF", string(out[:4]))
}
