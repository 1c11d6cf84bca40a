package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripdesk/internal/models"
)

type AgencyRepository struct {
	DB *pgxpool.Pool
}

func NewAgencyRepository(db *pgxpool.Pool) *AgencyRepository {
	return &AgencyRepository{DB: db}
}

// Save upserts the agency profile for a user. The UNIQUE(uid) constraint
// guarantees one profile per user.
func (r *AgencyRepository) Save(ctx context.Context, a *models.AgencyDetails) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO agency_details(uid, agency_name, owner_name, email, phone, whatsapp,
		        address, city, state, country, postal_code, website, registration_number)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), NULLIF($13, ''))
		 ON CONFLICT (uid) DO UPDATE SET
		        agency_name = EXCLUDED.agency_name,
		        owner_name = EXCLUDED.owner_name,
		        email = EXCLUDED.email,
		        phone = EXCLUDED.phone,
		        whatsapp = EXCLUDED.whatsapp,
		        address = EXCLUDED.address,
		        city = EXCLUDED.city,
		        state = EXCLUDED.state,
		        country = EXCLUDED.country,
		        postal_code = EXCLUDED.postal_code,
		        website = EXCLUDED.website,
		        registration_number = EXCLUDED.registration_number,
		        updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		a.UID, a.AgencyName, a.OwnerName, a.Email, a.Phone, a.Whatsapp,
		a.Address, a.City, a.State, a.Country, a.PostalCode, a.Website, a.RegistrationNumber,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AgencyRepository) GetByUID(ctx context.Context, uid int) (*models.AgencyDetails, error) {
	var a models.AgencyDetails
	err := r.DB.QueryRow(ctx,
		`SELECT id, uid, agency_name, owner_name, email, phone, whatsapp,
		        address, city, state, country, postal_code,
		        COALESCE(website, ''), COALESCE(registration_number, ''),
		        created_at, updated_at
		 FROM agency_details WHERE uid = $1`, uid,
	).Scan(&a.ID, &a.UID, &a.AgencyName, &a.OwnerName, &a.Email, &a.Phone, &a.Whatsapp,
		&a.Address, &a.City, &a.State, &a.Country, &a.PostalCode,
		&a.Website, &a.RegistrationNumber,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Exists reports whether a user has saved an agency profile yet.
func (r *AgencyRepository) Exists(ctx context.Context, uid int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM agency_details WHERE uid = $1)`, uid,
	).Scan(&exists)
	return exists, err
}
