package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Catalog is the data-access contract shared by every store-scoped entity
// kind. Concrete repositories add entity-specific queries on top (eager
// loading, filters) but all of them satisfy this shape so the service layer
// can drive one generic flow.
type Catalog[T domain.CatalogEntity] interface {
	Create(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (T, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]T, error)
}

// foreignKeyViolation is the SQLSTATE raised when a delete is blocked by a
// referencing row or an insert names a missing parent.
const foreignKeyViolation = "23503"

// classifyWriteError maps storage failures onto the domain taxonomy so
// callers never have to inspect driver errors themselves.
func classifyWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
