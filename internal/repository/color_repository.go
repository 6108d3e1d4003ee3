package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
)

// ColorRepository defines the interface for color data access
type ColorRepository = Catalog[*domain.Color]

type colorRepository struct {
	db *sql.DB
}

// NewColorRepository creates a new instance of ColorRepository
func NewColorRepository(db *sql.DB) ColorRepository {
	return &colorRepository{db: db}
}

func (r *colorRepository) Create(ctx context.Context, color *domain.Color) error {
	query := `
		INSERT INTO colors (id, store_id, name, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		color.ID,
		color.StoreID,
		color.Name,
		color.Value,
		color.CreatedAt,
		color.UpdatedAt,
	)

	if err != nil {
		return classifyWriteError("failed to create color", err)
	}

	return nil
}

func (r *colorRepository) Update(ctx context.Context, color *domain.Color) error {
	query := `
		UPDATE colors
		SET name = $2, value = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, color.ID, color.Name, color.Value, color.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update color: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("color %s: %w", color.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *colorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM colors WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("failed to delete color", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("color %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *colorRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Color, error) {
	query := `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM colors
		WHERE id = $1
	`

	color := &domain.Color{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&color.ID,
		&color.StoreID,
		&color.Name,
		&color.Value,
		&color.CreatedAt,
		&color.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("color %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find color by ID: %w", err)
	}

	return color, nil
}

func (r *colorRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Color, error) {
	query := `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM colors
		WHERE store_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	defer rows.Close()

	colors := []*domain.Color{}
	for rows.Next() {
		color := &domain.Color{}
		err := rows.Scan(
			&color.ID,
			&color.StoreID,
			&color.Name,
			&color.Value,
			&color.CreatedAt,
			&color.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, color)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating colors: %w", err)
	}

	return colors, nil
}
