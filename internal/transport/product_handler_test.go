package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"storefront-admin/internal/domain"
	custommiddleware "storefront-admin/internal/middleware"
	"storefront-admin/internal/repository"
	"storefront-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type stubProductRepository struct {
	*stubCatalogRepository[*domain.Product]
}

func (s *stubProductRepository) ListFiltered(ctx context.Context, storeID uuid.UUID, filter repository.ProductFilter) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, product := range s.entities {
		if product.StoreID != storeID {
			continue
		}
		if !filter.IncludeArchived && product.IsArchived {
			continue
		}
		if filter.CategoryID != nil && product.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.SizeID != nil && product.SizeID != *filter.SizeID {
			continue
		}
		if filter.ColorID != nil && product.ColorID != *filter.ColorID {
			continue
		}
		if filter.IsFeatured != nil && product.IsFeatured != *filter.IsFeatured {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

type productHandlerFixture struct {
	router   chi.Router
	store    *domain.Store
	category *domain.Category
	size     *domain.Size
	color    *domain.Color
}

func newProductHandlerFixture(t *testing.T) *productHandlerFixture {
	t.Helper()

	stores := newStubStoreRepository()
	store := &domain.Store{
		ID:        uuid.New(),
		UserID:    "owner",
		Name:      "Test Store",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	stores.stores[store.ID] = store

	now := time.Now()
	categories := newStubCatalogRepository[*domain.Category]()
	category := &domain.Category{ID: uuid.New(), StoreID: store.ID, BillboardID: uuid.New(), Name: "Shirts", CreatedAt: now, UpdatedAt: now}
	categories.entities[category.ID] = category

	sizes := newStubCatalogRepository[*domain.Size]()
	size := &domain.Size{ID: uuid.New(), StoreID: store.ID, Name: "Medium", Value: "M", CreatedAt: now, UpdatedAt: now}
	sizes.entities[size.ID] = size

	colors := newStubCatalogRepository[*domain.Color]()
	color := &domain.Color{ID: uuid.New(), StoreID: store.ID, Name: "Black", Value: "#000000", CreatedAt: now, UpdatedAt: now}
	colors.entities[color.ID] = color

	products := &stubProductRepository{stubCatalogRepository: newStubCatalogRepository[*domain.Product]()}

	logger := zap.NewNop()
	gate := service.NewGate(stores)
	productSvc := service.NewProductService(gate, products, categories, sizes, colors)
	handler := NewProductHandler(productSvc, logger)

	router := chi.NewRouter()
	auth := custommiddleware.AuthMiddleware(testSecret, logger)
	handler.RegisterRoutes(router, auth)

	return &productHandlerFixture{
		router:   router,
		store:    store,
		category: category,
		size:     size,
		color:    color,
	}
}

func (f *productHandlerFixture) validRequest() ProductRequest {
	return ProductRequest{
		Name:       "Plain Tee",
		Price:      decimal.NewFromFloat(19.99),
		CategoryID: f.category.ID,
		SizeID:     f.size.ID,
		ColorID:    f.color.ID,
		Images:     []ImageRequest{{URL: "https://img.example/tee.png"}},
	}
}

func TestProductCreateEndpoint(t *testing.T) {
	f := newProductHandlerFixture(t)
	base := fmt.Sprintf("/api/%s/products", f.store.ID)
	token := signToken(t, "owner")
	hf := &handlerFixture{router: f.router}

	t.Run("creates product with images", func(t *testing.T) {
		w := doRequest(hf, "POST", base, token, f.validRequest())
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var product domain.Product
		if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
			t.Fatalf("response is not a product: %v", err)
		}
		if len(product.Images) != 1 {
			t.Fatalf("expected one image, got %d", len(product.Images))
		}
	})

	t.Run("empty image set is a 400", func(t *testing.T) {
		req := f.validRequest()
		req.Images = nil
		w := doRequest(hf, "POST", base, token, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown category is a 400", func(t *testing.T) {
		req := f.validRequest()
		req.CategoryID = uuid.New()
		w := doRequest(hf, "POST", base, token, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing token is a 401", func(t *testing.T) {
		w := doRequest(hf, "POST", base, "", f.validRequest())
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestProductListFilters(t *testing.T) {
	f := newProductHandlerFixture(t)
	base := fmt.Sprintf("/api/%s/products", f.store.ID)
	token := signToken(t, "owner")
	hf := &handlerFixture{router: f.router}

	seed := func(name string, featured, archived bool) {
		req := f.validRequest()
		req.Name = name
		req.IsFeatured = featured
		req.IsArchived = archived
		w := doRequest(hf, "POST", base, token, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("failed to seed product %q: %d %s", name, w.Code, w.Body.String())
		}
	}

	seed("Plain Tee", false, false)
	seed("Featured Tee", true, false)
	seed("Retired Tee", false, true)

	t.Run("list excludes archived", func(t *testing.T) {
		w := doRequest(hf, "GET", base, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var listed []domain.Product
		if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
			t.Fatalf("response is not a list: %v", err)
		}
		if len(listed) != 2 {
			t.Fatalf("expected archived products to be hidden, got %d products", len(listed))
		}
	})

	t.Run("featured filter", func(t *testing.T) {
		w := doRequest(hf, "GET", base+"?is_featured=true", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var listed []domain.Product
		json.Unmarshal(w.Body.Bytes(), &listed)
		if len(listed) != 1 || listed[0].Name != "Featured Tee" {
			t.Fatalf("expected only the featured product, got %d products", len(listed))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		w := doRequest(hf, "GET", base+"?category_id="+f.category.ID.String(), "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var listed []domain.Product
		json.Unmarshal(w.Body.Bytes(), &listed)
		if len(listed) != 2 {
			t.Fatalf("expected both live products, got %d", len(listed))
		}
	})

	t.Run("malformed filter id is a 400", func(t *testing.T) {
		w := doRequest(hf, "GET", base+"?category_id=not-a-uuid", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed is_featured is a 400", func(t *testing.T) {
		w := doRequest(hf, "GET", base+"?is_featured=maybe", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProductUpdateReplacesImages(t *testing.T) {
	f := newProductHandlerFixture(t)
	base := fmt.Sprintf("/api/%s/products", f.store.ID)
	token := signToken(t, "owner")
	hf := &handlerFixture{router: f.router}

	req := f.validRequest()
	req.Images = []ImageRequest{
		{URL: "https://img.example/a.png"},
		{URL: "https://img.example/b.png"},
	}
	w := doRequest(hf, "POST", base, token, req)
	var created domain.Product
	json.Unmarshal(w.Body.Bytes(), &created)

	replacement := f.validRequest()
	replacement.Images = []ImageRequest{{URL: "https://img.example/c.png"}}

	w = doRequest(hf, "PATCH", base+"/"+created.ID.String(), token, replacement)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated domain.Product
	json.Unmarshal(w.Body.Bytes(), &updated)
	if len(updated.Images) != 1 || updated.Images[0].URL != "https://img.example/c.png" {
		t.Fatalf("expected the image set to be replaced, got %+v", updated.Images)
	}
}
