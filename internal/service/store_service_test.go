package service

import (
	"context"
	"errors"
	"testing"

	"storefront-admin/internal/domain"
)

func TestStoreServiceCreate(t *testing.T) {
	stores := newMockStoreRepository()
	svc := NewStoreService(stores, NewGate(stores))
	ctx := context.Background()

	t.Run("creates a store owned by the caller", func(t *testing.T) {
		store, err := svc.Create(ctx, "user-1", "Sneaker Shack")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.UserID != "user-1" {
			t.Fatalf("expected owner user-1, got %q", store.UserID)
		}
		if store.Name != "Sneaker Shack" {
			t.Fatalf("expected name to be kept, got %q", store.Name)
		}
	})

	t.Run("rejects empty identity", func(t *testing.T) {
		_, err := svc.Create(ctx, "", "Sneaker Shack")
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("expected unauthenticated, got %v", err)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := svc.Create(ctx, "user-1", "")
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})
}

func TestStoreServiceUpdate(t *testing.T) {
	stores := newMockStoreRepository()
	store := seedStore(stores, "owner")
	svc := NewStoreService(stores, NewGate(stores))
	ctx := context.Background()

	t.Run("owner can rename", func(t *testing.T) {
		updated, err := svc.Update(ctx, "owner", store.ID, "New Name")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "New Name" {
			t.Fatalf("expected renamed store, got %q", updated.Name)
		}
	})

	t.Run("non-owner cannot rename", func(t *testing.T) {
		_, err := svc.Update(ctx, "stranger", store.ID, "Stolen")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})
}

func TestStoreServiceDelete(t *testing.T) {
	stores := newMockStoreRepository()
	store := seedStore(stores, "owner")
	svc := NewStoreService(stores, NewGate(stores))
	ctx := context.Background()

	t.Run("non-owner cannot delete", func(t *testing.T) {
		_, err := svc.Delete(ctx, "stranger", store.ID)
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("owner deletes and gets the removed store back", func(t *testing.T) {
		deleted, err := svc.Delete(ctx, "owner", store.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted.ID != store.ID {
			t.Fatalf("expected store %s, got %s", store.ID, deleted.ID)
		}

		if _, err := svc.Get(ctx, store.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found after delete, got %v", err)
		}
	})
}

func TestStoreServiceListByUser(t *testing.T) {
	stores := newMockStoreRepository()
	seedStore(stores, "user-a")
	seedStore(stores, "user-a")
	seedStore(stores, "user-b")
	svc := NewStoreService(stores, NewGate(stores))
	ctx := context.Background()

	mine, err := svc.ListByUser(ctx, "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(mine))
	}

	if _, err := svc.ListByUser(ctx, ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}
