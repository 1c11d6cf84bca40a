package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripdesk/internal/models"
)

type LocationRepository struct {
	DB *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{DB: db}
}

func (r *LocationRepository) List(ctx context.Context) ([]models.Location, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, created_at FROM locations ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *LocationRepository) Create(ctx context.Context, l *models.Location) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO locations(name) VALUES($1) RETURNING id, created_at`,
		l.Name,
	).Scan(&l.ID, &l.CreatedAt)
}
