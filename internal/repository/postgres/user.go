package postgres

import (
	"context"
	"database/sql"
	"errors"

	"safepath/internal/domain"
	"safepath/internal/repository"
)

// UserRepository implements repository.UserRepository using PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create adds a new user.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, phone, password_hash, email, address) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Phone, user.PasswordHash, user.Email, user.Address)
	return err
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, phone, password_hash, email, address, created_at FROM users WHERE id = $1`
	return r.scanRow(r.db.QueryRowContext(ctx, query, id))
}

// GetByPhone retrieves a user by phone number.
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	query := `SELECT id, name, phone, password_hash, email, address, created_at FROM users WHERE phone = $1`
	return r.scanRow(r.db.QueryRowContext(ctx, query, phone))
}

// Update updates a user's profile fields.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $1, phone = $2, email = $3, address = $4 WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query, user.Name, user.Phone, user.Email, user.Address, user.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) scanRow(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var email, address sql.NullString

	err := row.Scan(&user.ID, &user.Name, &user.Phone, &user.PasswordHash, &email, &address, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	user.Email = email.String
	user.Address = address.String
	return &user, nil
}
