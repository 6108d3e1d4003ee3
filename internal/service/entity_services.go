package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-admin/internal/domain"
	"storefront-admin/internal/repository"
)

// BillboardService manages promotional billboards.
type BillboardService = CatalogService[*domain.Billboard]

// NewBillboardService creates the billboard service. Billboards have no
// reference fields, so there is no check beyond field validation.
func NewBillboardService(gate Gate, billboards repository.BillboardRepository) *BillboardService {
	return NewCatalogService(gate, billboards, nil)
}

// CategoryService manages product categories.
type CategoryService = CatalogService[*domain.Category]

// NewCategoryService creates the category service. The reference check
// requires the category's billboard to exist and to belong to the same store.
func NewCategoryService(gate Gate, categories repository.CategoryRepository, billboards repository.BillboardRepository) *CategoryService {
	check := func(ctx context.Context, category *domain.Category) error {
		billboard, err := billboards.FindByID(ctx, category.BillboardID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("billboard %s does not exist: %w", category.BillboardID, domain.ErrInvalidInput)
			}
			return err
		}
		if billboard.StoreID != category.StoreID {
			return fmt.Errorf("billboard %s belongs to another store: %w", category.BillboardID, domain.ErrInvalidInput)
		}
		return nil
	}

	return NewCatalogService(gate, categories, check)
}

// SizeService manages size attributes.
type SizeService = CatalogService[*domain.Size]

// NewSizeService creates the size service.
func NewSizeService(gate Gate, sizes repository.SizeRepository) *SizeService {
	return NewCatalogService(gate, sizes, nil)
}

// ColorService manages color attributes. The hex value format is enforced by
// field validation on the entity itself.
type ColorService = CatalogService[*domain.Color]

// NewColorService creates the color service.
func NewColorService(gate Gate, colors repository.ColorRepository) *ColorService {
	return NewCatalogService(gate, colors, nil)
}
