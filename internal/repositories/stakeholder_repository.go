package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripdesk/internal/models"
)

type StakeholderRepository struct {
	DB *pgxpool.Pool
}

func NewStakeholderRepository(db *pgxpool.Pool) *StakeholderRepository {
	return &StakeholderRepository{DB: db}
}

func (r *StakeholderRepository) Create(ctx context.Context, s *models.Stakeholder) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO stakeholders(uid, stakeholder_type, taxi_type, business_name,
		        contact_person_name, designation, phone, whatsapp, alternate_phone, address)
		 VALUES($1, $2, NULLIF($3, ''), $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10)
		 RETURNING id, created_at, updated_at`,
		s.UID, s.StakeholderType, s.TaxiType, s.BusinessName,
		s.ContactPersonName, s.Designation, s.Phone, s.Whatsapp, s.AlternatePhone, s.Address,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// List returns the owner's stakeholders, optionally filtered by type,
// newest first.
func (r *StakeholderRepository) List(ctx context.Context, uid int, stakeholderType string) ([]models.Stakeholder, error) {
	query := `SELECT id, uid, stakeholder_type, COALESCE(taxi_type, ''), business_name,
	                 contact_person_name, designation, phone, COALESCE(whatsapp, ''),
	                 COALESCE(alternate_phone, ''), address, created_at, updated_at
	          FROM stakeholders WHERE uid = $1`
	args := []interface{}{uid}
	if stakeholderType != "" {
		query += ` AND stakeholder_type = $2`
		args = append(args, stakeholderType)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stakeholders := []models.Stakeholder{}
	for rows.Next() {
		var s models.Stakeholder
		if err := rows.Scan(&s.ID, &s.UID, &s.StakeholderType, &s.TaxiType, &s.BusinessName,
			&s.ContactPersonName, &s.Designation, &s.Phone, &s.Whatsapp,
			&s.AlternatePhone, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stakeholders = append(stakeholders, s)
	}
	return stakeholders, rows.Err()
}

func (r *StakeholderRepository) Get(ctx context.Context, id, uid int) (*models.Stakeholder, error) {
	var s models.Stakeholder
	err := r.DB.QueryRow(ctx,
		`SELECT id, uid, stakeholder_type, COALESCE(taxi_type, ''), business_name,
		        contact_person_name, designation, phone, COALESCE(whatsapp, ''),
		        COALESCE(alternate_phone, ''), address, created_at, updated_at
		 FROM stakeholders WHERE id = $1 AND uid = $2`, id, uid,
	).Scan(&s.ID, &s.UID, &s.StakeholderType, &s.TaxiType, &s.BusinessName,
		&s.ContactPersonName, &s.Designation, &s.Phone, &s.Whatsapp,
		&s.AlternatePhone, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StakeholderRepository) Update(ctx context.Context, s *models.Stakeholder) error {
	return r.DB.QueryRow(ctx,
		`UPDATE stakeholders
		 SET stakeholder_type = $1, taxi_type = NULLIF($2, ''), business_name = $3,
		     contact_person_name = $4, designation = $5, phone = $6,
		     whatsapp = NULLIF($7, ''), alternate_phone = NULLIF($8, ''), address = $9,
		     updated_at = NOW()
		 WHERE id = $10 AND uid = $11
		 RETURNING updated_at`,
		s.StakeholderType, s.TaxiType, s.BusinessName,
		s.ContactPersonName, s.Designation, s.Phone,
		s.Whatsapp, s.AlternatePhone, s.Address,
		s.ID, s.UID,
	).Scan(&s.UpdatedAt)
}

func (r *StakeholderRepository) Delete(ctx context.Context, id, uid int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM stakeholders WHERE id = $1 AND uid = $2`, id, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
