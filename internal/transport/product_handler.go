package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"storefront-admin/internal/domain"
	"storefront-admin/internal/middleware"
	"storefront-admin/internal/repository"
	"storefront-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ImageRequest is one entry of a product's image set
type ImageRequest struct {
	URL string `json:"url"`
}

// ProductRequest is the create/update payload for products. Updates replace
// the image set wholesale.
type ProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID uuid.UUID       `json:"category_id"`
	SizeID     uuid.UUID       `json:"size_id"`
	ColorID    uuid.UUID       `json:"color_id"`
	Images     []ImageRequest  `json:"images"`
	IsFeatured bool            `json:"is_featured"`
	IsArchived bool            `json:"is_archived"`
}

// ProductHandler extends the generic catalog handler with the storefront
// product filters.
type ProductHandler struct {
	*CatalogHandler[*domain.Product, ProductRequest]
	productService *service.ProductService
}

// NewProductHandler creates the product handler
func NewProductHandler(svc *service.ProductService, logger *zap.Logger) *ProductHandler {
	build := func(storeID uuid.UUID, req ProductRequest) *domain.Product {
		images := make([]domain.Image, 0, len(req.Images))
		for _, image := range req.Images {
			images = append(images, domain.Image{URL: image.URL})
		}
		return &domain.Product{
			StoreID:    storeID,
			CategoryID: req.CategoryID,
			SizeID:     req.SizeID,
			ColorID:    req.ColorID,
			Name:       req.Name,
			Price:      req.Price,
			IsFeatured: req.IsFeatured,
			IsArchived: req.IsArchived,
			Images:     images,
		}
	}

	return &ProductHandler{
		CatalogHandler: NewCatalogHandler("products", svc.CatalogService, build, logger),
		productService: svc,
	}
}

// RegisterRoutes mounts the product routes under /api/{storeId}/products
func (h *ProductHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/{storeId}/products", func(r chi.Router) {
		// Public catalog reads
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		// Owner-only mutations
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Patch("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// List returns the store's products narrowed by the storefront query
// filters. Archived products are never listed here.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID, err := parseUUIDParam(r, "storeId")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "products_list", err)
		return
	}

	filter, err := parseProductFilter(r)
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "products_list", err)
		return
	}

	products, err := h.productService.ListFiltered(r.Context(), storeID, filter)
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "products_list", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

func parseProductFilter(r *http.Request) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{}

	parseID := func(param string) (*uuid.UUID, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			return nil, nil
		}
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("%s is not a valid id: %w", param, domain.ErrInvalidInput)
		}
		return &id, nil
	}

	var err error
	if filter.CategoryID, err = parseID("category_id"); err != nil {
		return filter, err
	}
	if filter.SizeID, err = parseID("size_id"); err != nil {
		return filter, err
	}
	if filter.ColorID, err = parseID("color_id"); err != nil {
		return filter, err
	}

	if value := r.URL.Query().Get("is_featured"); value != "" {
		featured, err := strconv.ParseBool(value)
		if err != nil {
			return filter, fmt.Errorf("is_featured is not a valid boolean: %w", domain.ErrInvalidInput)
		}
		filter.IsFeatured = &featured
	}

	return filter, nil
}
