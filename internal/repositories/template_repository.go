package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripdesk/internal/models"
)

type TemplateRepository struct {
	DB *pgxpool.Pool
}

func NewTemplateRepository(db *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

// ============================================
// Day templates (template_master)
// ============================================

func (r *TemplateRepository) CreateMaster(ctx context.Context, t *models.TemplateMaster) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO template_master(user_id, district, template_title, travel_time, description, overnight_stay)
		 VALUES($1, $2, $3, $4, $5, NULLIF($6, ''))
		 RETURNING id, created_at, updated_at`,
		t.UserID, t.District, t.TemplateTitle, t.TravelTime, t.Description, t.OvernightStay,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// ListMasters returns a user's day templates newest first, optionally
// filtered by district.
func (r *TemplateRepository) ListMasters(ctx context.Context, userID int, district string) ([]models.TemplateMaster, error) {
	query := `SELECT id, user_id, district, template_title, travel_time, description,
	                 COALESCE(overnight_stay, ''), created_at, updated_at
	          FROM template_master WHERE user_id = $1`
	args := []interface{}{userID}
	if district != "" {
		query += ` AND district = $2`
		args = append(args, district)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	masters := []models.TemplateMaster{}
	for rows.Next() {
		var t models.TemplateMaster
		if err := rows.Scan(&t.ID, &t.UserID, &t.District, &t.TemplateTitle, &t.TravelTime,
			&t.Description, &t.OvernightStay, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		masters = append(masters, t)
	}
	return masters, rows.Err()
}

func (r *TemplateRepository) UpdateMaster(ctx context.Context, t *models.TemplateMaster) error {
	return r.DB.QueryRow(ctx,
		`UPDATE template_master
		 SET district = $1, template_title = $2, travel_time = $3, description = $4,
		     overnight_stay = NULLIF($5, ''), updated_at = NOW()
		 WHERE id = $6 AND user_id = $7
		 RETURNING updated_at`,
		t.District, t.TemplateTitle, t.TravelTime, t.Description, t.OvernightStay,
		t.ID, t.UserID,
	).Scan(&t.UpdatedAt)
}

func (r *TemplateRepository) DeleteMaster(ctx context.Context, id, userID int) error {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM template_master WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ============================================
// Itinerary templates (multi-day plans)
// ============================================

func (r *TemplateRepository) CreateItineraryTemplate(ctx context.Context, t *models.ItineraryTemplate) error {
	days, err := json.Marshal(t.DefaultDays)
	if err != nil {
		return fmt.Errorf("encode default days: %w", err)
	}

	return r.DB.QueryRow(ctx,
		`INSERT INTO itinerary_templates(title, description, default_days, created_by)
		 VALUES($1, NULLIF($2, ''), $3, $4)
		 RETURNING id, created_at, updated_at`,
		t.Title, t.Description, days, t.CreatedBy,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TemplateRepository) ListItineraryTemplates(ctx context.Context) ([]models.ItineraryTemplate, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), default_days, created_by, created_at, updated_at
		 FROM itinerary_templates ORDER BY title`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []models.ItineraryTemplate{}
	for rows.Next() {
		var t models.ItineraryTemplate
		var days []byte
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &days,
			&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(days, &t.DefaultDays); err != nil {
			return nil, fmt.Errorf("decode default days for template %d: %w", t.ID, err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *TemplateRepository) GetItineraryTemplate(ctx context.Context, id int) (*models.ItineraryTemplate, error) {
	var t models.ItineraryTemplate
	var days []byte
	err := r.DB.QueryRow(ctx,
		`SELECT id, title, COALESCE(description, ''), default_days, created_by, created_at, updated_at
		 FROM itinerary_templates WHERE id = $1`, id,
	).Scan(&t.ID, &t.Title, &t.Description, &days, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(days, &t.DefaultDays); err != nil {
		return nil, fmt.Errorf("decode default days: %w", err)
	}
	return &t, nil
}

func (r *TemplateRepository) UpdateItineraryTemplate(ctx context.Context, t *models.ItineraryTemplate) error {
	days, err := json.Marshal(t.DefaultDays)
	if err != nil {
		return fmt.Errorf("encode default days: %w", err)
	}

	return r.DB.QueryRow(ctx,
		`UPDATE itinerary_templates
		 SET title = $1, description = NULLIF($2, ''), default_days = $3, updated_at = NOW()
		 WHERE id = $4
		 RETURNING updated_at`,
		t.Title, t.Description, days, t.ID,
	).Scan(&t.UpdatedAt)
}

func (r *TemplateRepository) DeleteItineraryTemplate(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM itinerary_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
