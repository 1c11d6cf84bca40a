package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"tripdesk/internal/metrics"
	"tripdesk/internal/models"
	"tripdesk/internal/pdf"
	"tripdesk/internal/repositories"
	"tripdesk/internal/timeutil"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ArchiveUploader stores a rendered document and returns its location.
type ArchiveUploader interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
}

type AssignmentService struct {
	Repo          *repositories.AssignmentRepository
	ItineraryRepo *repositories.ItineraryRepository
	AgencyRepo    *repositories.AgencyRepository
	Archive       ArchiveUploader // nil when no archive is configured
}

func NewAssignmentService(repo *repositories.AssignmentRepository, itineraryRepo *repositories.ItineraryRepository, agencyRepo *repositories.AgencyRepository, archive ArchiveUploader) *AssignmentService {
	return &AssignmentService{
		Repo:          repo,
		ItineraryRepo: itineraryRepo,
		AgencyRepo:    agencyRepo,
		Archive:       archive,
	}
}

// Assign records the itinerary being issued to a customer and renders the
// customer's document. The PDF bytes are returned for immediate download and
// the assignment row persists the customer and date details. ownerScope of 0
// reaches any owner's itinerary, otherwise the row must belong to the caller.
func (s *AssignmentService) Assign(ctx context.Context, itineraryID, userID, ownerScope int, req *models.AssignItineraryRequest) (*models.AssignItineraryResponse, []byte, error) {
	assignment, err := buildAssignment(itineraryID, userID, req)
	if err != nil {
		return nil, nil, err
	}

	it, err := s.ItineraryRepo.Get(ctx, itineraryID, ownerScope)
	if err != nil {
		return nil, nil, fmt.Errorf("load itinerary: %w", err)
	}

	if err := s.Repo.Create(ctx, assignment); err != nil {
		return nil, nil, fmt.Errorf("save assignment: %w", err)
	}

	data, err := s.renderDocument(ctx, it, assignment, userID)
	if err != nil {
		return nil, nil, err
	}

	resp := &models.AssignItineraryResponse{
		Assignment: assignment,
		PDFName:    documentName(it, assignment),
	}

	if s.Archive != nil {
		url, err := s.Archive.Upload(ctx, resp.PDFName, data)
		if err != nil {
			// The assignment is saved and the client gets the PDF, archival
			// failure is not fatal.
			log.Printf("[Assignment] Archive upload failed for %s: %v", resp.PDFName, err)
		} else {
			resp.ArchiveURL = url
		}
	}

	return resp, data, nil
}

// Export renders an itinerary document without a customer assignment. Used
// for previews and generic shares.
func (s *AssignmentService) Export(ctx context.Context, itineraryID, userID, ownerScope int) (string, []byte, error) {
	it, err := s.ItineraryRepo.Get(ctx, itineraryID, ownerScope)
	if err != nil {
		return "", nil, fmt.Errorf("load itinerary: %w", err)
	}

	data, err := s.renderDocument(ctx, it, nil, userID)
	if err != nil {
		return "", nil, err
	}
	return documentName(it, nil), data, nil
}

func (s *AssignmentService) ListForItinerary(ctx context.Context, itineraryID, ownerScope int) ([]models.ItineraryAssignment, error) {
	return s.Repo.ListForItinerary(ctx, itineraryID, ownerScope)
}

func (s *AssignmentService) renderDocument(ctx context.Context, it *models.Itinerary, assignment *models.ItineraryAssignment, userID int) ([]byte, error) {
	agency, err := s.AgencyRepo.GetByUID(ctx, userID)
	if err != nil {
		// Document still renders without the agency footer
		agency = nil
	}

	data, err := pdf.Render(pdf.Project(it, agency, assignment))
	if err != nil {
		metrics.PDFGenerations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("render document: %w", err)
	}
	metrics.PDFGenerations.WithLabelValues("success").Inc()
	return data, nil
}

func buildAssignment(itineraryID, userID int, req *models.AssignItineraryRequest) (*models.ItineraryAssignment, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, errors.New("customer name is required")
	}
	if !phonePattern.MatchString(req.ContactNumber) {
		return nil, errors.New("contact number must be 10 digits")
	}
	if !phonePattern.MatchString(req.WhatsappNumber) {
		return nil, errors.New("whatsapp number must be 10 digits")
	}
	if req.AlternateNumber != "" && !phonePattern.MatchString(req.AlternateNumber) {
		return nil, errors.New("alternate number must be 10 digits")
	}
	if req.Adults < 1 {
		return nil, errors.New("at least one adult is required")
	}
	if req.Children < 0 {
		return nil, errors.New("children cannot be negative")
	}

	start, err := time.Parse(timeutil.DateLayout, req.StartDate)
	if err != nil {
		return nil, errors.New("invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse(timeutil.DateLayout, req.EndDate)
	if err != nil {
		return nil, errors.New("invalid end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, errors.New("end date is before the start date")
	}

	return &models.ItineraryAssignment{
		ItineraryID:     itineraryID,
		CustomerName:    name,
		ContactNumber:   req.ContactNumber,
		WhatsappNumber:  req.WhatsappNumber,
		AlternateNumber: strings.TrimSpace(req.AlternateNumber),
		StartDate:       start,
		EndDate:         end,
		Nights:          Nights(start, end),
		Adults:          req.Adults,
		Children:        req.Children,
		TotalPersons:    req.Adults + req.Children,
		CreatedBy:       userID,
	}, nil
}

// Nights is the number of overnight stays between two dates. Same-day trips
// have zero nights.
func Nights(start, end time.Time) int {
	n := int(end.Sub(start).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func documentName(it *models.Itinerary, assignment *models.ItineraryAssignment) string {
	base := unsafeNameChars.ReplaceAllString(strings.TrimSpace(it.Title), "_")
	if assignment != nil {
		customer := unsafeNameChars.ReplaceAllString(assignment.CustomerName, "_")
		return fmt.Sprintf("itinerary_%d_%s_%s.pdf", it.ID, base, customer)
	}
	return fmt.Sprintf("itinerary_%d_%s.pdf", it.ID, base)
}
