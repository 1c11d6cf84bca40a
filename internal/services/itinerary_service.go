package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripdesk/internal/models"
	"tripdesk/internal/normalize"
	"tripdesk/internal/repositories"
	"tripdesk/internal/timeutil"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrNoDays        = errors.New("at least one day is required")
)

type ItineraryService struct {
	Repo *repositories.ItineraryRepository
}

func NewItineraryService(repo *repositories.ItineraryRepository) *ItineraryService {
	return &ItineraryService{Repo: repo}
}

// Create validates the payload and stores a new itinerary. Day numbers come
// from the submitted order.
func (s *ItineraryService) Create(ctx context.Context, userID int, req *models.SaveItineraryRequest) (*models.Itinerary, error) {
	it, err := buildItinerary(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Update validates the payload and replaces an existing itinerary's content
// and days. ownerScope of 0 edits any owner's itinerary, otherwise the row
// must belong to that user.
func (s *ItineraryService) Update(ctx context.Context, id, userID, ownerScope int, req *models.SaveItineraryRequest) (*models.Itinerary, error) {
	it, err := buildItinerary(userID, req)
	if err != nil {
		return nil, err
	}
	it.ID = id
	if err := s.Repo.Update(ctx, it, ownerScope); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *ItineraryService) Get(ctx context.Context, id, ownerScope int) (*models.Itinerary, error) {
	return s.Repo.Get(ctx, id, ownerScope)
}

func (s *ItineraryService) Delete(ctx context.Context, id, ownerScope int) error {
	return s.Repo.Delete(ctx, id, ownerScope)
}

// List returns summaries, scoped to one owner unless createdBy is 0.
func (s *ItineraryService) List(ctx context.Context, createdBy int) ([]models.ItinerarySummary, error) {
	return s.Repo.List(ctx, createdBy)
}

func buildItinerary(userID int, req *models.SaveItineraryRequest) (*models.Itinerary, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if len(req.Days) == 0 {
		return nil, ErrNoDays
	}

	it := &models.Itinerary{
		Title:       strings.TrimSpace(req.Title),
		Subtitle:    strings.TrimSpace(req.Subtitle),
		Overview:    strings.TrimSpace(req.Overview),
		NumAdults:   req.NumAdults,
		NumChildren: req.NumChildren,
		Inclusions:  normalize.StringList(req.Inclusions),
		Exclusions:  normalize.StringList(req.Exclusions),
		Terms:       normalize.StringList(req.Terms),
		CreatedBy:   userID,
	}

	var err error
	if it.TripStartDate, err = parseOptionalDate(req.TripStartDate); err != nil {
		return nil, err
	}
	if it.TripEndDate, err = parseOptionalDate(req.TripEndDate); err != nil {
		return nil, err
	}
	if it.TripStartDate != nil && it.TripEndDate != nil && it.TripEndDate.Before(*it.TripStartDate) {
		return nil, errors.New("trip end date is before the start date")
	}

	for i, form := range req.Days {
		it.Days = append(it.Days, models.ItineraryDay{
			DayNumber:       i + 1,
			FromLocation:    strings.TrimSpace(form.FromLocation),
			ToLocation:      strings.TrimSpace(form.ToLocation),
			TravelTimeHours: form.TravelTimeHours,
			Highlights:      normalize.StringList(form.Highlights),
			OvernightStay:   strings.TrimSpace(form.OvernightStay),
			Description:     normalize.StringList(form.Description),
			CreatedBy:       userID,
		})
	}

	return it, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse(timeutil.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &t, nil
}
