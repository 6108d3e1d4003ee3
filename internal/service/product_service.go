package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-admin/internal/domain"
	"storefront-admin/internal/repository"

	"github.com/google/uuid"
)

// ProductService manages products. It shares the generic catalog flow and
// adds the product-specific pieces: price and image-set validation, same-store
// checks on all three references, and filtered storefront listings.
type ProductService struct {
	*CatalogService[*domain.Product]
	products repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(
	gate Gate,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	sizes repository.SizeRepository,
	colors repository.ColorRepository,
) *ProductService {
	check := func(ctx context.Context, product *domain.Product) error {
		if len(product.Images) == 0 {
			return fmt.Errorf("at least one image is required: %w", domain.ErrInvalidInput)
		}
		for _, image := range product.Images {
			if image.URL == "" {
				return fmt.Errorf("image url must not be empty: %w", domain.ErrInvalidInput)
			}
		}
		if !product.Price.IsPositive() {
			return fmt.Errorf("price must be positive: %w", domain.ErrInvalidInput)
		}

		category, err := categories.FindByID(ctx, product.CategoryID)
		if err != nil {
			return referenceError("category", product.CategoryID, err)
		}
		if category.StoreID != product.StoreID {
			return fmt.Errorf("category %s belongs to another store: %w", product.CategoryID, domain.ErrInvalidInput)
		}

		size, err := sizes.FindByID(ctx, product.SizeID)
		if err != nil {
			return referenceError("size", product.SizeID, err)
		}
		if size.StoreID != product.StoreID {
			return fmt.Errorf("size %s belongs to another store: %w", product.SizeID, domain.ErrInvalidInput)
		}

		color, err := colors.FindByID(ctx, product.ColorID)
		if err != nil {
			return referenceError("color", product.ColorID, err)
		}
		if color.StoreID != product.StoreID {
			return fmt.Errorf("color %s belongs to another store: %w", product.ColorID, domain.ErrInvalidInput)
		}

		return nil
	}

	return &ProductService{
		CatalogService: NewCatalogService[*domain.Product](gate, products, check),
		products:       products,
	}
}

// ListFiltered returns a store's products narrowed by the storefront filters.
// Archived products are excluded unless the filter asks for them.
func (s *ProductService) ListFiltered(ctx context.Context, storeID uuid.UUID, filter repository.ProductFilter) ([]*domain.Product, error) {
	return s.products.ListFiltered(ctx, storeID, filter)
}

func referenceError(kind string, id uuid.UUID, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s %s does not exist: %w", kind, id, domain.ErrInvalidInput)
	}
	return err
}
