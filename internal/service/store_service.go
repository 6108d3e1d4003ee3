package service

import (
	"context"
	"time"

	"storefront-admin/internal/domain"
	"storefront-admin/internal/repository"

	"github.com/google/uuid"
)

// StoreService manages the tenant roots. Store is authorized directly by its
// own user_id rather than through a parent lookup.
type StoreService interface {
	Create(ctx context.Context, userID, name string) (*domain.Store, error)
	Update(ctx context.Context, userID string, id uuid.UUID, name string) (*domain.Store, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Store, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Store, error)
}

type storeService struct {
	stores repository.StoreRepository
	gate   Gate
}

// NewStoreService creates a new instance of StoreService
func NewStoreService(stores repository.StoreRepository, gate Gate) StoreService {
	return &storeService{stores: stores, gate: gate}
}

// Create opens a new store owned by the caller.
func (s *storeService) Create(ctx context.Context, userID, name string) (*domain.Store, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	now := time.Now()
	store := &domain.Store{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := domain.Validate(store); err != nil {
		return nil, err
	}

	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// Update renames a store the caller owns.
func (s *storeService) Update(ctx context.Context, userID string, id uuid.UUID, name string) (*domain.Store, error) {
	store, err := s.gate.AuthorizeStore(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	store.Name = name
	store.UpdatedAt = time.Now()

	if err := domain.Validate(store); err != nil {
		return nil, err
	}

	if err := s.stores.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// Delete removes a store the caller owns. The delete is blocked with a
// conflict while any billboard, category, size, color or product remains.
func (s *storeService) Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Store, error) {
	store, err := s.gate.AuthorizeStore(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.stores.Delete(ctx, id); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *storeService) Get(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	return s.stores.FindByID(ctx, id)
}

func (s *storeService) ListByUser(ctx context.Context, userID string) ([]*domain.Store, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.stores.ListByUser(ctx, userID)
}
