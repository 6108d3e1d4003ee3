package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
)

// BillboardRepository defines the interface for billboard data access
type BillboardRepository = Catalog[*domain.Billboard]

type billboardRepository struct {
	db *sql.DB
}

// NewBillboardRepository creates a new instance of BillboardRepository
func NewBillboardRepository(db *sql.DB) BillboardRepository {
	return &billboardRepository{db: db}
}

func (r *billboardRepository) Create(ctx context.Context, billboard *domain.Billboard) error {
	query := `
		INSERT INTO billboards (id, store_id, label, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		billboard.ID,
		billboard.StoreID,
		billboard.Label,
		billboard.ImageURL,
		billboard.CreatedAt,
		billboard.UpdatedAt,
	)

	if err != nil {
		return classifyWriteError("failed to create billboard", err)
	}

	return nil
}

func (r *billboardRepository) Update(ctx context.Context, billboard *domain.Billboard) error {
	query := `
		UPDATE billboards
		SET label = $2, image_url = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		billboard.ID,
		billboard.Label,
		billboard.ImageURL,
		billboard.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update billboard: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("billboard %s: %w", billboard.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a billboard. Deleting one that is still referenced by a
// category surfaces as a conflict.
func (r *billboardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM billboards WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("failed to delete billboard", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("billboard %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *billboardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Billboard, error) {
	query := `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards
		WHERE id = $1
	`

	billboard := &domain.Billboard{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&billboard.ID,
		&billboard.StoreID,
		&billboard.Label,
		&billboard.ImageURL,
		&billboard.CreatedAt,
		&billboard.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("billboard %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find billboard by ID: %w", err)
	}

	return billboard, nil
}

func (r *billboardRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Billboard, error) {
	query := `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards
		WHERE store_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list billboards: %w", err)
	}
	defer rows.Close()

	billboards := []*domain.Billboard{}
	for rows.Next() {
		billboard := &domain.Billboard{}
		err := rows.Scan(
			&billboard.ID,
			&billboard.StoreID,
			&billboard.Label,
			&billboard.ImageURL,
			&billboard.CreatedAt,
			&billboard.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan billboard: %w", err)
		}
		billboards = append(billboards, billboard)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating billboards: %w", err)
	}

	return billboards, nil
}
