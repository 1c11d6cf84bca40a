package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripdesk/internal/models"
)

type AssignmentRepository struct {
	DB *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *models.ItineraryAssignment) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO itinerary_assignments(itinerary_id, customer_name, contact_number,
		        whatsapp_number, alternate_number, start_date, end_date, nights,
		        adults, children, total_persons, created_by)
		 VALUES($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at`,
		a.ItineraryID, a.CustomerName, a.ContactNumber,
		a.WhatsappNumber, a.AlternateNumber, a.StartDate, a.EndDate, a.Nights,
		a.Adults, a.Children, a.TotalPersons, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
}

// ListForItinerary returns assignments of one itinerary, newest first. A
// createdBy of 0 matches any itinerary owner, otherwise only assignments of
// that user's itineraries are visible.
func (r *AssignmentRepository) ListForItinerary(ctx context.Context, itineraryID, createdBy int) ([]models.ItineraryAssignment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT a.id, a.itinerary_id, a.customer_name, a.contact_number, a.whatsapp_number,
		        COALESCE(a.alternate_number, ''), a.start_date, a.end_date, a.nights,
		        a.adults, a.children, a.total_persons, a.created_by, a.created_at
		 FROM itinerary_assignments a
		 JOIN itineraries i ON i.id = a.itinerary_id
		 WHERE a.itinerary_id = $1 AND ($2 = 0 OR i.created_by = $2)
		 ORDER BY a.created_at DESC`, itineraryID, createdBy,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []models.ItineraryAssignment{}
	for rows.Next() {
		var a models.ItineraryAssignment
		if err := rows.Scan(&a.ID, &a.ItineraryID, &a.CustomerName, &a.ContactNumber,
			&a.WhatsappNumber, &a.AlternateNumber, &a.StartDate, &a.EndDate, &a.Nights,
			&a.Adults, &a.Children, &a.TotalPersons, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
