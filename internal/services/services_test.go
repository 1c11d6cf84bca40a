package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models"
)

func TestBuildItineraryAssignsDayNumbersFromPosition(t *testing.T) {
	req := &models.SaveItineraryRequest{
		Title: "Sikkim Explorer",
		Days: []models.DayForm{
			{FromLocation: "Bagdogra", ToLocation: "Gangtok"},
			{FromLocation: "Gangtok", ToLocation: "Lachung"},
			{FromLocation: "Lachung", ToLocation: "Gangtok"},
		},
	}

	it, err := buildItinerary(9, req)
	require.NoError(t, err)
	require.Len(t, it.Days, 3)
	for i, d := range it.Days {
		assert.Equal(t, i+1, d.DayNumber)
		assert.Equal(t, 9, d.CreatedBy)
	}
}

func TestBuildItineraryValidation(t *testing.T) {
	_, err := buildItinerary(1, &models.SaveItineraryRequest{
		Days: []models.DayForm{{FromLocation: "A"}},
	})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = buildItinerary(1, &models.SaveItineraryRequest{Title: "Trip"})
	assert.ErrorIs(t, err, ErrNoDays)

	_, err = buildItinerary(1, &models.SaveItineraryRequest{
		Title:         "Trip",
		TripStartDate: "2026-10-05",
		TripEndDate:   "2026-10-01",
		Days:          []models.DayForm{{FromLocation: "A"}},
	})
	assert.Error(t, err)

	_, err = buildItinerary(1, &models.SaveItineraryRequest{
		Title:         "Trip",
		TripStartDate: "05-10-2026",
		Days:          []models.DayForm{{FromLocation: "A"}},
	})
	assert.Error(t, err)
}

func TestBuildItineraryNormalizesLegacyLists(t *testing.T) {
	req := &models.SaveItineraryRequest{
		Title:      "Trip",
		Inclusions: []string{" Hotel stays ", ""},
		Days: []models.DayForm{
			{Highlights: []string{"  Tsomgo Lake ", ""}},
		},
	}

	it, err := buildItinerary(1, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hotel stays"}, it.Inclusions)
	assert.Equal(t, []string{"Tsomgo Lake"}, it.Days[0].Highlights)
}

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.November, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 4, Nights(day(1), day(5)))
	assert.Equal(t, 0, Nights(day(3), day(3)))
	assert.Equal(t, 0, Nights(day(5), day(1)))
}

func TestBuildAssignmentValidation(t *testing.T) {
	valid := func() *models.AssignItineraryRequest {
		return &models.AssignItineraryRequest{
			CustomerName:   "R. Sharma",
			ContactNumber:  "9900112233",
			WhatsappNumber: "9900112233",
			StartDate:      "2026-11-01",
			EndDate:        "2026-11-05",
			Adults:         2,
		}
	}

	a, err := buildAssignment(7, 3, valid())
	require.NoError(t, err)
	assert.Equal(t, 7, a.ItineraryID)
	assert.Equal(t, 4, a.Nights)
	assert.Equal(t, 2, a.TotalPersons)

	req := valid()
	req.CustomerName = "  "
	_, err = buildAssignment(7, 3, req)
	assert.Error(t, err)

	req = valid()
	req.ContactNumber = "12345"
	_, err = buildAssignment(7, 3, req)
	assert.Error(t, err)

	req = valid()
	req.Adults = 0
	_, err = buildAssignment(7, 3, req)
	assert.Error(t, err)

	req = valid()
	req.EndDate = "2026-10-20"
	_, err = buildAssignment(7, 3, req)
	assert.Error(t, err)
}

func TestDocumentName(t *testing.T) {
	it := &models.Itinerary{ID: 12, Title: "Sikkim Explorer: 5 Days!"}

	assert.Equal(t, "itinerary_12_Sikkim_Explorer_5_Days_.pdf", documentName(it, nil))

	a := &models.ItineraryAssignment{CustomerName: "R. Sharma"}
	assert.Equal(t, "itinerary_12_Sikkim_Explorer_5_Days__R_Sharma.pdf", documentName(it, a))
}
