package transport

import (
	"fmt"
	"net/http"

	"storefront-admin/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// parseUUIDParam reads a path parameter as a UUID. Missing or malformed ids
// are invalid input, not lookups that failed.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	value := chi.URLParam(r, name)
	if value == "" {
		return uuid.Nil, fmt.Errorf("%s is required: %w", name, domain.ErrInvalidInput)
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s is not a valid id: %w", name, domain.ErrInvalidInput)
	}

	return id, nil
}
