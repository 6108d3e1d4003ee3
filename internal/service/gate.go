package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-admin/internal/domain"
	"storefront-admin/internal/repository"

	"github.com/google/uuid"
)

// Gate is the authorization check that guards every mutation of store-scoped
// data. It never runs for reads, which are public catalog lookups.
type Gate interface {
	// AuthorizeStore returns the store when userID owns storeID,
	// domain.ErrUnauthenticated when no identity was presented, and
	// domain.ErrUnauthorized when the identity does not own the store.
	AuthorizeStore(ctx context.Context, userID string, storeID uuid.UUID) (*domain.Store, error)
}

type storeGate struct {
	stores repository.StoreRepository
}

// NewGate creates a Gate backed by the store ownership lookup.
func NewGate(stores repository.StoreRepository) Gate {
	return &storeGate{stores: stores}
}

func (g *storeGate) AuthorizeStore(ctx context.Context, userID string, storeID uuid.UUID) (*domain.Store, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	store, err := g.stores.FindByIDAndUser(ctx, storeID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("store %s is not owned by caller: %w", storeID, domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to authorize store access: %w", err)
	}

	return store, nil
}
