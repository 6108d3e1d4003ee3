package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
)

// StoreRepository defines the interface for store data access
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	Update(ctx context.Context, store *domain.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*domain.Store, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Store, error)
}

type storeRepository struct {
	db *sql.DB
}

// NewStoreRepository creates a new instance of StoreRepository
func NewStoreRepository(db *sql.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *domain.Store) error {
	query := `
		INSERT INTO stores (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		store.ID,
		store.UserID,
		store.Name,
		store.CreatedAt,
		store.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	return nil
}

func (r *storeRepository) Update(ctx context.Context, store *domain.Store) error {
	query := `
		UPDATE stores
		SET name = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, store.ID, store.Name, store.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("store %s: %w", store.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a store. The database blocks the delete while any catalog
// entity still belongs to the store, which surfaces as a conflict.
func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM stores WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("failed to delete store", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("store %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM stores
		WHERE id = $1
	`

	store := &domain.Store{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&store.ID,
		&store.UserID,
		&store.Name,
		&store.CreatedAt,
		&store.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find store by ID: %w", err)
	}

	return store, nil
}

// FindByIDAndUser is the ownership lookup behind the authorization gate: it
// resolves only when the store exists and belongs to the given identity.
func (r *storeRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*domain.Store, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM stores
		WHERE id = $1 AND user_id = $2
	`

	store := &domain.Store{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&store.ID,
		&store.UserID,
		&store.Name,
		&store.CreatedAt,
		&store.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store %s for user: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find store by ID and user: %w", err)
	}

	return store, nil
}

func (r *storeRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Store, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM stores
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	stores := []*domain.Store{}
	for rows.Next() {
		store := &domain.Store{}
		err := rows.Scan(
			&store.ID,
			&store.UserID,
			&store.Name,
			&store.CreatedAt,
			&store.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stores: %w", err)
	}

	return stores, nil
}
