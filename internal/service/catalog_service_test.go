package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Mock repositories for testing

type mockStoreRepository struct {
	stores map[uuid.UUID]*domain.Store
}

func newMockStoreRepository() *mockStoreRepository {
	return &mockStoreRepository{stores: make(map[uuid.UUID]*domain.Store)}
}

func (m *mockStoreRepository) Create(ctx context.Context, store *domain.Store) error {
	m.stores[store.ID] = store
	return nil
}

func (m *mockStoreRepository) Update(ctx context.Context, store *domain.Store) error {
	if _, exists := m.stores[store.ID]; !exists {
		return fmt.Errorf("store %s: %w", store.ID, domain.ErrNotFound)
	}
	m.stores[store.ID] = store
	return nil
}

func (m *mockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.stores[id]; !exists {
		return fmt.Errorf("store %s: %w", id, domain.ErrNotFound)
	}
	delete(m.stores, id)
	return nil
}

func (m *mockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	store, exists := m.stores[id]
	if !exists {
		return nil, fmt.Errorf("store %s: %w", id, domain.ErrNotFound)
	}
	return store, nil
}

func (m *mockStoreRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*domain.Store, error) {
	store, exists := m.stores[id]
	if !exists || store.UserID != userID {
		return nil, fmt.Errorf("store %s for user: %w", id, domain.ErrNotFound)
	}
	return store, nil
}

func (m *mockStoreRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Store, error) {
	stores := []*domain.Store{}
	for _, store := range m.stores {
		if store.UserID == userID {
			stores = append(stores, store)
		}
	}
	return stores, nil
}

// memCatalogRepository is an in-memory stand-in for any catalog repository.
type memCatalogRepository[T domain.CatalogEntity] struct {
	entities map[uuid.UUID]T
}

func newMemCatalogRepository[T domain.CatalogEntity]() *memCatalogRepository[T] {
	return &memCatalogRepository[T]{entities: make(map[uuid.UUID]T)}
}

func (m *memCatalogRepository[T]) Create(ctx context.Context, entity T) error {
	m.entities[entity.EntityID()] = entity
	return nil
}

func (m *memCatalogRepository[T]) Update(ctx context.Context, entity T) error {
	if _, exists := m.entities[entity.EntityID()]; !exists {
		return fmt.Errorf("entity %s: %w", entity.EntityID(), domain.ErrNotFound)
	}
	m.entities[entity.EntityID()] = entity
	return nil
}

func (m *memCatalogRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.entities[id]; !exists {
		return fmt.Errorf("entity %s: %w", id, domain.ErrNotFound)
	}
	delete(m.entities, id)
	return nil
}

func (m *memCatalogRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (T, error) {
	entity, exists := m.entities[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("entity %s: %w", id, domain.ErrNotFound)
	}
	return entity, nil
}

func (m *memCatalogRepository[T]) ListByStore(ctx context.Context, storeID uuid.UUID) ([]T, error) {
	entities := []T{}
	for _, entity := range m.entities {
		if entity.StoreRef() == storeID {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}

func seedStore(stores *mockStoreRepository, userID string) *domain.Store {
	store := &domain.Store{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Test Store",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	stores.stores[store.ID] = store
	return store
}

// Property: a caller owning one store may not mutate resources scoped to
// another user's store.
func TestProperty_CrossStoreMutationsAreDenied(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("creating in another user's store fails with unauthorized", prop.ForAll(
		func(ownerID string, intruderID string, label string) bool {
			if ownerID == "" || intruderID == "" || ownerID == intruderID {
				return true
			}

			stores := newMockStoreRepository()
			store := seedStore(stores, ownerID)
			billboards := newMemCatalogRepository[*domain.Billboard]()
			svc := NewBillboardService(NewGate(stores), billboards)

			_, err := svc.Create(context.Background(), intruderID, &domain.Billboard{
				StoreID:  store.ID,
				Label:    label,
				ImageURL: "https://img.example/banner.png",
			})

			return errors.Is(err, domain.ErrUnauthorized)
		},
		gen.Identifier(),
		gen.Identifier(),
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBillboardCreateValidation(t *testing.T) {
	stores := newMockStoreRepository()
	store := seedStore(stores, "user-1")
	billboards := newMemCatalogRepository[*domain.Billboard]()
	svc := NewBillboardService(NewGate(stores), billboards)
	ctx := context.Background()

	cases := []struct {
		name     string
		label    string
		imageURL string
		wantErr  bool
	}{
		{"missing label", "", "https://img.example/a.png", true},
		{"missing image url", "Summer Sale", "", true},
		{"both present", "Summer Sale", "https://img.example/a.png", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			billboard, err := svc.Create(ctx, "user-1", &domain.Billboard{
				StoreID:  store.ID,
				Label:    tc.label,
				ImageURL: tc.imageURL,
			})

			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Fatalf("expected invalid input, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if billboard.ID == uuid.Nil {
				t.Fatal("expected a fresh id to be assigned")
			}
			if billboard.CreatedAt.IsZero() || billboard.UpdatedAt.IsZero() {
				t.Fatal("expected timestamps to be assigned")
			}
		})
	}
}

// Property: every successful create assigns an id that was never seen before.
func TestProperty_CreatedIDsAreFresh(t *testing.T) {
	stores := newMockStoreRepository()
	store := seedStore(stores, "user-1")
	billboards := newMemCatalogRepository[*domain.Billboard]()
	svc := NewBillboardService(NewGate(stores), billboards)
	ctx := context.Background()

	seen := make(map[uuid.UUID]bool)

	properties := gopter.NewProperties(nil)
	properties.Property("ids never repeat", prop.ForAll(
		func(label string) bool {
			if label == "" {
				return true
			}
			billboard, err := svc.Create(ctx, "user-1", &domain.Billboard{
				StoreID:  store.ID,
				Label:    label,
				ImageURL: "https://img.example/a.png",
			})
			if err != nil {
				return false
			}
			if seen[billboard.ID] {
				return false
			}
			seen[billboard.ID] = true
			return true
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestColorValueMustBeHexLike(t *testing.T) {
	stores := newMockStoreRepository()
	store := seedStore(stores, "user-1")
	colors := newMemCatalogRepository[*domain.Color]()
	svc := NewColorService(NewGate(stores), colors)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", &domain.Color{
		StoreID: store.ID,
		Name:    "Blue",
		Value:   "blue",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for value without #, got %v", err)
	}

	color, err := svc.Create(ctx, "user-1", &domain.Color{
		StoreID: store.ID,
		Name:    "Blue",
		Value:   "#0000ff",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if color.Value != "#0000ff" {
		t.Fatalf("expected value to be preserved, got %q", color.Value)
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	stores := newMockStoreRepository()
	store := seedStore(stores, "user-1")
	billboards := newMemCatalogRepository[*domain.Billboard]()
	categories := newMemCatalogRepository[*domain.Category]()

	gate := NewGate(stores)
	billboardSvc := NewBillboardService(gate, billboards)
	categorySvc := NewCategoryService(gate, categories, billboards)
	ctx := context.Background()

	billboard, err := billboardSvc.Create(ctx, "user-1", &domain.Billboard{
		StoreID:  store.ID,
		Label:    "Front Page",
		ImageURL: "https://img.example/front.png",
	})
	if err != nil {
		t.Fatalf("failed to create billboard: %v", err)
	}

	created, err := categorySvc.Create(ctx, "user-1", &domain.Category{
		StoreID:     store.ID,
		BillboardID: billboard.ID,
		Name:        "Shirts",
	})
	if err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	fetched, err := categorySvc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("failed to get category: %v", err)
	}
	if fetched.Name != "Shirts" {
		t.Errorf("expected name to survive the round trip, got %q", fetched.Name)
	}
	if fetched.BillboardID != billboard.ID {
		t.Errorf("expected billboard reference to survive the round trip, got %s", fetched.BillboardID)
	}
}

func TestCategoryBillboardMustBelongToSameStore(t *testing.T) {
	stores := newMockStoreRepository()
	storeA := seedStore(stores, "user-a")
	storeB := seedStore(stores, "user-b")

	billboards := newMemCatalogRepository[*domain.Billboard]()
	categories := newMemCatalogRepository[*domain.Category]()

	gate := NewGate(stores)
	billboardSvc := NewBillboardService(gate, billboards)
	categorySvc := NewCategoryService(gate, categories, billboards)
	ctx := context.Background()

	foreign, err := billboardSvc.Create(ctx, "user-b", &domain.Billboard{
		StoreID:  storeB.ID,
		Label:    "Other Store Banner",
		ImageURL: "https://img.example/other.png",
	})
	if err != nil {
		t.Fatalf("failed to create billboard: %v", err)
	}

	_, err = categorySvc.Create(ctx, "user-a", &domain.Category{
		StoreID:     storeA.ID,
		BillboardID: foreign.ID,
		Name:        "Shirts",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for cross-store billboard reference, got %v", err)
	}
}

func TestListEmptyStoreReturnsEmptySlice(t *testing.T) {
	stores := newMockStoreRepository()
	store := seedStore(stores, "user-1")
	sizes := newMemCatalogRepository[*domain.Size]()
	svc := NewSizeService(NewGate(stores), sizes)

	listed, err := svc.List(context.Background(), store.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listed == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(listed) != 0 {
		t.Fatalf("expected no sizes, got %d", len(listed))
	}
}

// Property: mutations without an identity fail as unauthenticated before any
// field of the payload is examined.
func TestProperty_UnauthenticatedMutationsFailFirst(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("empty identity yields unauthenticated even for invalid payloads", prop.ForAll(
		func(label string, imageURL string) bool {
			stores := newMockStoreRepository()
			store := seedStore(stores, "user-1")
			billboards := newMemCatalogRepository[*domain.Billboard]()
			svc := NewBillboardService(NewGate(stores), billboards)

			_, err := svc.Create(context.Background(), "", &domain.Billboard{
				StoreID:  store.ID,
				Label:    label,
				ImageURL: imageURL,
			})

			// Unauthenticated must win over any validation failure.
			return errors.Is(err, domain.ErrUnauthenticated)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestUpdateAcrossStoresIsDenied(t *testing.T) {
	stores := newMockStoreRepository()
	storeA := seedStore(stores, "user-a")
	storeB := seedStore(stores, "user-b")

	billboards := newMemCatalogRepository[*domain.Billboard]()
	gate := NewGate(stores)
	svc := NewBillboardService(gate, billboards)
	ctx := context.Background()

	victim, err := svc.Create(ctx, "user-b", &domain.Billboard{
		StoreID:  storeB.ID,
		Label:    "Victim",
		ImageURL: "https://img.example/v.png",
	})
	if err != nil {
		t.Fatalf("failed to create billboard: %v", err)
	}

	// user-a owns storeA and tries to rewrite storeB's billboard through it.
	_, err = svc.Update(ctx, "user-a", victim.ID, &domain.Billboard{
		StoreID:  storeA.ID,
		Label:    "Hijacked",
		ImageURL: "https://img.example/h.png",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for cross-store update, got %v", err)
	}
}

func TestDeleteReturnsRemovedEntity(t *testing.T) {
	stores := newMockStoreRepository()
	store := seedStore(stores, "user-1")
	billboards := newMemCatalogRepository[*domain.Billboard]()
	svc := NewBillboardService(NewGate(stores), billboards)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", &domain.Billboard{
		StoreID:  store.ID,
		Label:    "Short Lived",
		ImageURL: "https://img.example/s.png",
	})
	if err != nil {
		t.Fatalf("failed to create billboard: %v", err)
	}

	deleted, err := svc.Delete(ctx, "user-1", store.ID, created.ID)
	if err != nil {
		t.Fatalf("failed to delete billboard: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("expected deleted entity %s, got %s", created.ID, deleted.ID)
	}

	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
