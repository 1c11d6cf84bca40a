package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripdesk/internal/models"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO users(name, email, password_hash, user_group)
		 VALUES($1, $2, $3, $4)
		 RETURNING id, is_active, created_at, updated_at`,
		u.Name, u.Email, u.PasswordHash, u.Group,
	).Scan(&u.ID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, email, password_hash, user_group, is_active, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Group, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, email, password_hash, user_group, is_active, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Group, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, email, user_group, is_active, created_at, updated_at
		 FROM users ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Group, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update changes user fields. An empty password hash leaves the current one
// in place.
func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	return r.DB.QueryRow(ctx,
		`UPDATE users
		 SET name = $1, email = $2, user_group = $3, is_active = $4,
		     password_hash = CASE WHEN $5 = '' THEN password_hash ELSE $5 END,
		     updated_at = NOW()
		 WHERE id = $6
		 RETURNING password_hash, updated_at`,
		u.Name, u.Email, u.Group, u.IsActive, u.PasswordHash, u.ID,
	).Scan(&u.PasswordHash, &u.UpdatedAt)
}

func (r *UserRepository) ToggleStatus(ctx context.Context, id int) (bool, error) {
	var active bool
	err := r.DB.QueryRow(ctx,
		`UPDATE users SET is_active = NOT is_active, updated_at = NOW()
		 WHERE id = $1 RETURNING is_active`, id,
	).Scan(&active)
	return active, err
}
