package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
)

// SizeRepository defines the interface for size data access
type SizeRepository = Catalog[*domain.Size]

type sizeRepository struct {
	db *sql.DB
}

// NewSizeRepository creates a new instance of SizeRepository
func NewSizeRepository(db *sql.DB) SizeRepository {
	return &sizeRepository{db: db}
}

func (r *sizeRepository) Create(ctx context.Context, size *domain.Size) error {
	query := `
		INSERT INTO sizes (id, store_id, name, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		size.ID,
		size.StoreID,
		size.Name,
		size.Value,
		size.CreatedAt,
		size.UpdatedAt,
	)

	if err != nil {
		return classifyWriteError("failed to create size", err)
	}

	return nil
}

func (r *sizeRepository) Update(ctx context.Context, size *domain.Size) error {
	query := `
		UPDATE sizes
		SET name = $2, value = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, size.ID, size.Name, size.Value, size.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update size: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("size %s: %w", size.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *sizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sizes WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("failed to delete size", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("size %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *sizeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Size, error) {
	query := `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes
		WHERE id = $1
	`

	size := &domain.Size{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&size.ID,
		&size.StoreID,
		&size.Name,
		&size.Value,
		&size.CreatedAt,
		&size.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("size %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find size by ID: %w", err)
	}

	return size, nil
}

func (r *sizeRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Size, error) {
	query := `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes
		WHERE store_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sizes: %w", err)
	}
	defer rows.Close()

	sizes := []*domain.Size{}
	for rows.Next() {
		size := &domain.Size{}
		err := rows.Scan(
			&size.ID,
			&size.StoreID,
			&size.Name,
			&size.Value,
			&size.CreatedAt,
			&size.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan size: %w", err)
		}
		sizes = append(sizes, size)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sizes: %w", err)
	}

	return sizes, nil
}
