package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category data access. Reads
// eager-load the category's billboard.
type CategoryRepository = Catalog[*domain.Category]

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, store_id, billboard_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.StoreID,
		category.BillboardID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		return classifyWriteError("failed to create category", err)
	}

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET billboard_id = $2, name = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.BillboardID,
		category.Name,
		category.UpdatedAt,
	)

	if err != nil {
		return classifyWriteError("failed to update category", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("category %s: %w", category.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a category. Deleting one that is still referenced by a
// product surfaces as a conflict.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("failed to delete category", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query := `
		SELECT c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
		       b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at
		FROM categories c
		JOIN billboards b ON b.id = c.billboard_id
		WHERE c.id = $1
	`

	category := &domain.Category{}
	billboard := &domain.Billboard{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.StoreID,
		&category.BillboardID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
		&billboard.ID,
		&billboard.StoreID,
		&billboard.Label,
		&billboard.ImageURL,
		&billboard.CreatedAt,
		&billboard.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	category.Billboard = billboard
	return category, nil
}

func (r *categoryRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Category, error) {
	query := `
		SELECT c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
		       b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at
		FROM categories c
		JOIN billboards b ON b.id = c.billboard_id
		WHERE c.store_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category := &domain.Category{}
		billboard := &domain.Billboard{}
		err := rows.Scan(
			&category.ID,
			&category.StoreID,
			&category.BillboardID,
			&category.Name,
			&category.CreatedAt,
			&category.UpdatedAt,
			&billboard.ID,
			&billboard.StoreID,
			&billboard.Label,
			&billboard.ImageURL,
			&billboard.CreatedAt,
			&billboard.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		category.Billboard = billboard
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
