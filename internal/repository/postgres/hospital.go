package postgres

import (
	"context"
	"database/sql"

	"safepath/internal/domain"
)

// HospitalRepository implements repository.HospitalRepository using PostgreSQL.
type HospitalRepository struct {
	db *sql.DB
}

// NewHospitalRepository creates a new HospitalRepository.
func NewHospitalRepository(db *sql.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// Search finds hospitals whose name, full name or address matches the query.
func (r *HospitalRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Hospital, error) {
	if limit <= 0 {
		limit = 10
	}

	q := `
		SELECT id, name, full_name, address, lat, lng
		FROM hospitals
		WHERE name ILIKE '%' || $1 || '%'
		   OR full_name ILIKE '%' || $1 || '%'
		   OR address ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, q, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHospitals(rows)
}

// GetAll retrieves the full hospital directory.
func (r *HospitalRepository) GetAll(ctx context.Context) ([]*domain.Hospital, error) {
	q := `SELECT id, name, full_name, address, lat, lng FROM hospitals ORDER BY name`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHospitals(rows)
}

func scanHospitals(rows *sql.Rows) ([]*domain.Hospital, error) {
	var hospitals []*domain.Hospital
	for rows.Next() {
		var h domain.Hospital
		var fullName sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &fullName, &h.Address, &h.Lat, &h.Lng); err != nil {
			return nil, err
		}
		h.FullName = fullName.String
		hospitals = append(hospitals, &h)
	}
	return hospitals, rows.Err()
}
