package service

import (
	"context"
	"fmt"
	"time"

	"storefront-admin/internal/domain"
	"storefront-admin/internal/repository"

	"github.com/google/uuid"
)

// CheckFunc verifies cross-entity references once ownership is established,
// e.g. that a category's billboard lives in the same store.
type CheckFunc[T domain.CatalogEntity] func(ctx context.Context, entity T) error

// CatalogService drives the shared flow for every store-scoped entity kind:
// authorize, validate fields, verify references, stamp, persist. Billboards,
// categories, sizes and colors instantiate it directly; products embed it.
//
// Mutations always run the gate first, so an unauthenticated or cross-store
// request fails before any field of the body is looked at.
type CatalogService[T domain.CatalogEntity] struct {
	gate  Gate
	repo  repository.Catalog[T]
	check CheckFunc[T]
}

// NewCatalogService creates a catalog service for one entity kind. check may
// be nil for kinds without reference fields.
func NewCatalogService[T domain.CatalogEntity](gate Gate, repo repository.Catalog[T], check CheckFunc[T]) *CatalogService[T] {
	return &CatalogService[T]{gate: gate, repo: repo, check: check}
}

// Create inserts a new entity into the caller's store.
func (s *CatalogService[T]) Create(ctx context.Context, userID string, entity T) (T, error) {
	var zero T

	if _, err := s.gate.AuthorizeStore(ctx, userID, entity.StoreRef()); err != nil {
		return zero, err
	}

	if err := s.validate(ctx, entity); err != nil {
		return zero, err
	}

	entity.Stamp(uuid.New(), time.Now())

	if err := s.repo.Create(ctx, entity); err != nil {
		return zero, err
	}

	return entity, nil
}

// Update replaces every field of an existing entity. Partial patches are not
// supported; callers resupply the full field set.
func (s *CatalogService[T]) Update(ctx context.Context, userID string, id uuid.UUID, entity T) (T, error) {
	var zero T

	if _, err := s.gate.AuthorizeStore(ctx, userID, entity.StoreRef()); err != nil {
		return zero, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if existing.StoreRef() != entity.StoreRef() {
		return zero, fmt.Errorf("entity %s belongs to another store: %w", id, domain.ErrUnauthorized)
	}

	if err := s.validate(ctx, entity); err != nil {
		return zero, err
	}

	entity.Touch(id, time.Now())

	if err := s.repo.Update(ctx, entity); err != nil {
		return zero, err
	}

	return entity, nil
}

// Delete removes an entity and returns the record that was removed. Deletes
// blocked by referencing rows surface as domain.ErrConflict.
func (s *CatalogService[T]) Delete(ctx context.Context, userID string, storeID, id uuid.UUID) (T, error) {
	var zero T

	if _, err := s.gate.AuthorizeStore(ctx, userID, storeID); err != nil {
		return zero, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if existing.StoreRef() != storeID {
		return zero, fmt.Errorf("entity %s belongs to another store: %w", id, domain.ErrUnauthorized)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return zero, err
	}

	return existing, nil
}

// Get looks an entity up by id alone. Reads are public and deliberately not
// store-scoped: the catalog is what the storefront serves to anyone.
func (s *CatalogService[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every entity of this kind in a store, newest first. An empty
// store yields an empty slice, never an error.
func (s *CatalogService[T]) List(ctx context.Context, storeID uuid.UUID) ([]T, error) {
	return s.repo.ListByStore(ctx, storeID)
}

func (s *CatalogService[T]) validate(ctx context.Context, entity T) error {
	if err := domain.Validate(entity); err != nil {
		return err
	}
	if s.check != nil {
		if err := s.check(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}
