package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripdesk/internal/models"
	"tripdesk/internal/normalize"
)

type ItineraryRepository struct {
	DB *pgxpool.Pool
}

func NewItineraryRepository(db *pgxpool.Pool) *ItineraryRepository {
	return &ItineraryRepository{DB: db}
}

// Create inserts the parent itinerary and its days in one transaction.
// Day numbers are assigned from slice position, starting at 1. On any
// failure the whole write rolls back so no orphan days remain.
func (r *ItineraryRepository) Create(ctx context.Context, it *models.Itinerary) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO itineraries(title, subtitle, overview, trip_start_date, trip_end_date,
		        num_adults, num_children, inclusions, exclusions, terms, created_by)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		it.Title, it.Subtitle, it.Overview, it.TripStartDate, it.TripEndDate,
		it.NumAdults, it.NumChildren,
		normalize.Encode(it.Inclusions), normalize.Encode(it.Exclusions), normalize.Encode(it.Terms),
		it.CreatedBy,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert itinerary: %w", err)
	}

	if err := insertDays(ctx, tx, it); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update rewrites the parent row and replaces all day rows in one
// transaction. Replacing instead of diffing keeps day numbering authoritative
// from the submitted order. A createdBy of 0 matches any owner, otherwise the
// row must belong to that user or pgx.ErrNoRows is returned.
func (r *ItineraryRepository) Update(ctx context.Context, it *models.Itinerary, createdBy int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`UPDATE itineraries
		 SET title = $1, subtitle = $2, overview = $3, trip_start_date = $4, trip_end_date = $5,
		     num_adults = $6, num_children = $7, inclusions = $8, exclusions = $9, terms = $10,
		     updated_at = NOW()
		 WHERE id = $11 AND ($12 = 0 OR created_by = $12)
		 RETURNING created_at, updated_at, created_by`,
		it.Title, it.Subtitle, it.Overview, it.TripStartDate, it.TripEndDate,
		it.NumAdults, it.NumChildren,
		normalize.Encode(it.Inclusions), normalize.Encode(it.Exclusions), normalize.Encode(it.Terms),
		it.ID, createdBy,
	).Scan(&it.CreatedAt, &it.UpdatedAt, &it.CreatedBy)
	if err != nil {
		return fmt.Errorf("update itinerary: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM itinerary_days WHERE itinerary_id = $1`, it.ID); err != nil {
		return fmt.Errorf("clear days: %w", err)
	}

	if err := insertDays(ctx, tx, it); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertDays(ctx context.Context, tx pgx.Tx, it *models.Itinerary) error {
	for i := range it.Days {
		day := &it.Days[i]
		day.ItineraryID = it.ID
		day.DayNumber = i + 1
		if day.CreatedBy == 0 {
			day.CreatedBy = it.CreatedBy
		}

		err := tx.QueryRow(ctx,
			`INSERT INTO itinerary_days(itinerary_id, day_number, from_location, to_location,
			        travel_time_hours, highlights, overnight_stay, description, created_by)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING id, created_at, updated_at`,
			day.ItineraryID, day.DayNumber, day.FromLocation, day.ToLocation,
			day.TravelTimeHours,
			normalize.Encode(day.Highlights), day.OvernightStay, normalize.Encode(day.Description),
			day.CreatedBy,
		).Scan(&day.ID, &day.CreatedAt, &day.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert day %d: %w", day.DayNumber, err)
		}
	}
	return nil
}

// Get retrieves an itinerary with its days ordered by day number. Tag lists
// come back normalized regardless of how old rows were encoded. A createdBy
// of 0 matches any owner, otherwise non-owned rows report pgx.ErrNoRows.
func (r *ItineraryRepository) Get(ctx context.Context, id, createdBy int) (*models.Itinerary, error) {
	var it models.Itinerary
	var inclusions, exclusions, terms *string

	err := r.DB.QueryRow(ctx,
		`SELECT id, title, COALESCE(subtitle, ''), COALESCE(overview, ''),
		        trip_start_date, trip_end_date,
		        COALESCE(num_adults, 0), COALESCE(num_children, 0),
		        inclusions, exclusions, terms, created_by, created_at, updated_at
		 FROM itineraries WHERE id = $1 AND ($2 = 0 OR created_by = $2)`, id, createdBy,
	).Scan(&it.ID, &it.Title, &it.Subtitle, &it.Overview,
		&it.TripStartDate, &it.TripEndDate,
		&it.NumAdults, &it.NumChildren,
		&inclusions, &exclusions, &terms, &it.CreatedBy, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}

	it.Inclusions = normalizeNullable(inclusions)
	it.Exclusions = normalizeNullable(exclusions)
	it.Terms = normalizeNullable(terms)

	rows, err := r.DB.Query(ctx,
		`SELECT id, itinerary_id, day_number, from_location, to_location, travel_time_hours,
		        highlights, overnight_stay, description, created_by, created_at, updated_at
		 FROM itinerary_days WHERE itinerary_id = $1 ORDER BY day_number`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("load days: %w", err)
	}
	defer rows.Close()

	days := []models.ItineraryDay{}
	for rows.Next() {
		var d models.ItineraryDay
		var highlights, description string
		if err := rows.Scan(&d.ID, &d.ItineraryID, &d.DayNumber, &d.FromLocation, &d.ToLocation,
			&d.TravelTimeHours, &highlights, &d.OvernightStay, &description,
			&d.CreatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		d.Highlights = normalize.StringList(highlights)
		d.Description = normalize.StringList(description)
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	it.Days = days

	return &it, nil
}

// Delete removes an itinerary and its days in one transaction. Child rows go
// first to satisfy the foreign key. A createdBy of 0 matches any owner;
// missing and non-owned rows both report pgx.ErrNoRows.
func (r *ItineraryRepository) Delete(ctx context.Context, id, createdBy int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var owner int
	if err := tx.QueryRow(ctx, `SELECT created_by FROM itineraries WHERE id = $1`, id).Scan(&owner); err != nil {
		return err
	}
	if createdBy != 0 && owner != createdBy {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, `DELETE FROM itinerary_assignments WHERE itinerary_id = $1`, id); err != nil {
		return fmt.Errorf("delete assignments: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM itinerary_days WHERE itinerary_id = $1`, id); err != nil {
		return fmt.Errorf("delete days: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM itineraries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete itinerary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

// List returns itineraries newest first with a derived day count. A
// createdBy of 0 lists every owner's itineraries.
func (r *ItineraryRepository) List(ctx context.Context, createdBy int) ([]models.ItinerarySummary, error) {
	query := `SELECT i.id, i.title, COALESCE(i.subtitle, ''), COUNT(d.id) AS day_count, i.created_at
	          FROM itineraries i
	          LEFT JOIN itinerary_days d ON d.itinerary_id = i.id`
	args := []interface{}{}
	if createdBy > 0 {
		query += ` WHERE i.created_by = $1`
		args = append(args, createdBy)
	}
	query += ` GROUP BY i.id ORDER BY i.created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.ItinerarySummary{}
	for rows.Next() {
		var s models.ItinerarySummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.DayCount, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func normalizeNullable(s *string) []string {
	if s == nil {
		return []string{}
	}
	return normalize.StringList(*s)
}
