package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogEntity is implemented by every store-scoped catalog record. It is
// what lets one generic service drive the shared authorize/validate/persist
// flow instead of repeating it per entity kind.
type CatalogEntity interface {
	EntityID() uuid.UUID
	StoreRef() uuid.UUID
	// Stamp assigns a fresh identity and creation timestamps on insert.
	Stamp(id uuid.UUID, now time.Time)
	// Touch assigns the target identity and bumps the update timestamp
	// ahead of a full-replace update.
	Touch(id uuid.UUID, now time.Time)
}

// Billboard is a promotional banner. Categories reference billboards, so a
// billboard cannot be deleted while any category points at it.
type Billboard struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StoreID   uuid.UUID `json:"store_id" db:"store_id"`
	Label     string    `json:"label" db:"label" validate:"required"`
	ImageURL  string    `json:"image_url" db:"image_url" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (b *Billboard) EntityID() uuid.UUID { return b.ID }
func (b *Billboard) StoreRef() uuid.UUID { return b.StoreID }

func (b *Billboard) Stamp(id uuid.UUID, now time.Time) {
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
}

func (b *Billboard) Touch(id uuid.UUID, now time.Time) {
	b.ID = id
	b.UpdatedAt = now
}

// Category groups products under a billboard. Products reference categories,
// so a category cannot be deleted while any product points at it.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	StoreID     uuid.UUID `json:"store_id" db:"store_id"`
	BillboardID uuid.UUID `json:"billboard_id" db:"billboard_id" validate:"required"`
	Name        string    `json:"name" db:"name" validate:"required"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Billboard is eager-loaded on reads, never persisted from here.
	Billboard *Billboard `json:"billboard,omitempty" db:"-"`
}

func (c *Category) EntityID() uuid.UUID { return c.ID }
func (c *Category) StoreRef() uuid.UUID { return c.StoreID }

func (c *Category) Stamp(id uuid.UUID, now time.Time) {
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
}

func (c *Category) Touch(id uuid.UUID, now time.Time) {
	c.ID = id
	c.UpdatedAt = now
}

// Size is a simple name/value attribute, e.g. "Large" / "L".
type Size struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StoreID   uuid.UUID `json:"store_id" db:"store_id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	Value     string    `json:"value" db:"value" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (s *Size) EntityID() uuid.UUID { return s.ID }
func (s *Size) StoreRef() uuid.UUID { return s.StoreID }

func (s *Size) Stamp(id uuid.UUID, now time.Time) {
	s.ID = id
	s.CreatedAt = now
	s.UpdatedAt = now
}

func (s *Size) Touch(id uuid.UUID, now time.Time) {
	s.ID = id
	s.UpdatedAt = now
}

// Color is a name/value attribute whose value is a hex color, e.g. "#0000ff".
type Color struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StoreID   uuid.UUID `json:"store_id" db:"store_id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	Value     string    `json:"value" db:"value" validate:"required,startswith=#"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (c *Color) EntityID() uuid.UUID { return c.ID }
func (c *Color) StoreRef() uuid.UUID { return c.StoreID }

func (c *Color) Stamp(id uuid.UUID, now time.Time) {
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
}

func (c *Color) Touch(id uuid.UUID, now time.Time) {
	c.ID = id
	c.UpdatedAt = now
}

// Image is a product photo. Images are owned exclusively by one product and
// are replaced as a whole set whenever the product is updated.
type Image struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	URL       string    `json:"url" db:"url" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Product is the leaf of the catalog graph. It references a category, size
// and color from the same store and carries at least one image.
type Product struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	StoreID    uuid.UUID       `json:"store_id" db:"store_id"`
	CategoryID uuid.UUID       `json:"category_id" db:"category_id" validate:"required"`
	SizeID     uuid.UUID       `json:"size_id" db:"size_id" validate:"required"`
	ColorID    uuid.UUID       `json:"color_id" db:"color_id" validate:"required"`
	Name       string          `json:"name" db:"name" validate:"required"`
	Price      decimal.Decimal `json:"price" db:"price"`
	IsFeatured bool            `json:"is_featured" db:"is_featured"`
	IsArchived bool            `json:"is_archived" db:"is_archived"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`

	Images []Image `json:"images" db:"-"`

	// Eager-loaded relations, populated on reads only.
	Category *Category `json:"category,omitempty" db:"-"`
	Size     *Size     `json:"size,omitempty" db:"-"`
	Color    *Color    `json:"color,omitempty" db:"-"`
}

func (p *Product) EntityID() uuid.UUID { return p.ID }
func (p *Product) StoreRef() uuid.UUID { return p.StoreID }

func (p *Product) Stamp(id uuid.UUID, now time.Time) {
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	for i := range p.Images {
		p.Images[i].ID = uuid.New()
		p.Images[i].ProductID = id
		p.Images[i].CreatedAt = now
		p.Images[i].UpdatedAt = now
	}
}

func (p *Product) Touch(id uuid.UUID, now time.Time) {
	p.ID = id
	p.UpdatedAt = now
	for i := range p.Images {
		p.Images[i].ID = uuid.New()
		p.Images[i].ProductID = id
		p.Images[i].CreatedAt = now
		p.Images[i].UpdatedAt = now
	}
}
