package domain

import (
	"time"

	"github.com/google/uuid"
)

// Store is the tenant root. Every catalog entity belongs to exactly one
// store, and only the identity recorded in UserID may mutate its contents.
type Store struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
