package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
)

// ProductFilter narrows a product listing. Nil fields are ignored. Archived
// products are hidden from storefront listings unless IncludeArchived is set.
type ProductFilter struct {
	CategoryID      *uuid.UUID
	SizeID          *uuid.UUID
	ColorID         *uuid.UUID
	IsFeatured      *bool
	IncludeArchived bool
}

// ProductRepository defines the interface for product data access. Reads
// eager-load the product's category, size, color and images.
type ProductRepository interface {
	Catalog[*domain.Product]
	ListFiltered(ctx context.Context, storeID uuid.UUID, filter ProductFilter) ([]*domain.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts the product and its image set in a single transaction.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, store_id, category_id, size_id, color_id, name, price,
		                      is_featured, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = tx.ExecContext(
		ctx,
		query,
		product.ID,
		product.StoreID,
		product.CategoryID,
		product.SizeID,
		product.ColorID,
		product.Name,
		product.Price,
		product.IsFeatured,
		product.IsArchived,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return classifyWriteError("failed to create product", err)
	}

	if err := insertImages(ctx, tx, product.Images); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product create: %w", err)
	}

	return nil
}

// Update replaces the product row and its full image set in one transaction,
// so a failure mid-way never leaves a product without images.
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE products
		SET category_id = $2, size_id = $3, color_id = $4, name = $5, price = $6,
		    is_featured = $7, is_archived = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := tx.ExecContext(
		ctx,
		query,
		product.ID,
		product.CategoryID,
		product.SizeID,
		product.ColorID,
		product.Name,
		product.Price,
		product.IsFeatured,
		product.IsArchived,
		product.UpdatedAt,
	)
	if err != nil {
		return classifyWriteError("failed to update product", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("product %s: %w", product.ID, domain.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("failed to clear product images: %w", err)
	}

	if err := insertImages(ctx, tx, product.Images); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product update: %w", err)
	}

	return nil
}

// Delete removes a product. Its images go with it via the cascade constraint.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return classifyWriteError("failed to delete product", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

const productSelect = `
	SELECT p.id, p.store_id, p.category_id, p.size_id, p.color_id, p.name, p.price,
	       p.is_featured, p.is_archived, p.created_at, p.updated_at,
	       c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
	       s.id, s.store_id, s.name, s.value, s.created_at, s.updated_at,
	       col.id, col.store_id, col.name, col.value, col.created_at, col.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN sizes s ON s.id = p.size_id
	JOIN colors col ON col.id = p.color_id
`

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := productSelect + ` WHERE p.id = $1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	if err := r.loadImages(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Product, error) {
	return r.ListFiltered(ctx, storeID, ProductFilter{IncludeArchived: true})
}

func (r *productRepository) ListFiltered(ctx context.Context, storeID uuid.UUID, filter ProductFilter) ([]*domain.Product, error) {
	where := `WHERE p.store_id = $1`
	args := []interface{}{storeID}
	argIndex := 2

	if filter.CategoryID != nil {
		where += fmt.Sprintf(" AND p.category_id = $%d", argIndex)
		args = append(args, *filter.CategoryID)
		argIndex++
	}
	if filter.SizeID != nil {
		where += fmt.Sprintf(" AND p.size_id = $%d", argIndex)
		args = append(args, *filter.SizeID)
		argIndex++
	}
	if filter.ColorID != nil {
		where += fmt.Sprintf(" AND p.color_id = $%d", argIndex)
		args = append(args, *filter.ColorID)
		argIndex++
	}
	if filter.IsFeatured != nil {
		where += fmt.Sprintf(" AND p.is_featured = $%d", argIndex)
		args = append(args, *filter.IsFeatured)
		argIndex++
	}
	if !filter.IncludeArchived {
		where += " AND p.is_archived = FALSE"
	}

	query := productSelect + " " + where + ` ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	for _, product := range products {
		if err := r.loadImages(ctx, product); err != nil {
			return nil, err
		}
	}

	return products, nil
}

func (r *productRepository) loadImages(ctx context.Context, product *domain.Product) error {
	query := `
		SELECT id, product_id, url, created_at, updated_at
		FROM product_images
		WHERE product_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, product.ID)
	if err != nil {
		return fmt.Errorf("failed to load product images: %w", err)
	}
	defer rows.Close()

	images := []domain.Image{}
	for rows.Next() {
		image := domain.Image{}
		err := rows.Scan(
			&image.ID,
			&image.ProductID,
			&image.URL,
			&image.CreatedAt,
			&image.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan product image: %w", err)
		}
		images = append(images, image)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating product images: %w", err)
	}

	product.Images = images
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	category := &domain.Category{}
	size := &domain.Size{}
	color := &domain.Color{}

	err := row.Scan(
		&product.ID,
		&product.StoreID,
		&product.CategoryID,
		&product.SizeID,
		&product.ColorID,
		&product.Name,
		&product.Price,
		&product.IsFeatured,
		&product.IsArchived,
		&product.CreatedAt,
		&product.UpdatedAt,
		&category.ID,
		&category.StoreID,
		&category.BillboardID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
		&size.ID,
		&size.StoreID,
		&size.Name,
		&size.Value,
		&size.CreatedAt,
		&size.UpdatedAt,
		&color.ID,
		&color.StoreID,
		&color.Name,
		&color.Value,
		&color.CreatedAt,
		&color.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Category = category
	product.Size = size
	product.Color = color
	return product, nil
}

func insertImages(ctx context.Context, tx *sql.Tx, images []domain.Image) error {
	query := `
		INSERT INTO product_images (id, product_id, url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, image := range images {
		_, err := tx.ExecContext(
			ctx,
			query,
			image.ID,
			image.ProductID,
			image.URL,
			image.CreatedAt,
			image.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert product image: %w", err)
		}
	}

	return nil
}
