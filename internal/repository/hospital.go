package repository

import (
	"context"

	"safepath/internal/domain"
)

// HospitalRepository defines read access to the hospital directory.
type HospitalRepository interface {
	// Search finds hospitals whose name or address matches the query.
	Search(ctx context.Context, query string, limit int) ([]*domain.Hospital, error)

	// GetAll retrieves the full directory.
	GetAll(ctx context.Context) ([]*domain.Hospital, error)
}
