package transport

import (
	"encoding/json"
	"net/http"

	"storefront-admin/internal/domain"
	"storefront-admin/internal/middleware"
	"storefront-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogHandler serves the HTTP surface of one catalog entity kind. The
// route shape, auth split and status codes are identical across kinds, so a
// single generic handler covers billboards, categories, sizes and colors;
// only the request payload type and the entity builder differ.
//
// Reads are public. Mutations sit behind the auth middleware, so a request
// without an identity is rejected before its body is ever decoded.
type CatalogHandler[T domain.CatalogEntity, R any] struct {
	name    string
	service *service.CatalogService[T]
	build   func(storeID uuid.UUID, req R) T
	logger  *zap.Logger
}

// NewCatalogHandler creates a handler for one entity kind. name is the URL
// segment, e.g. "billboards".
func NewCatalogHandler[T domain.CatalogEntity, R any](
	name string,
	svc *service.CatalogService[T],
	build func(storeID uuid.UUID, req R) T,
	logger *zap.Logger,
) *CatalogHandler[T, R] {
	return &CatalogHandler[T, R]{
		name:    name,
		service: svc,
		build:   build,
		logger:  logger,
	}
}

// RegisterRoutes mounts the entity routes under /api/{storeId}/<name>
func (h *CatalogHandler[T, R]) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/{storeId}/"+h.name, func(r chi.Router) {
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

// List returns the store's full collection, newest first.
func (h *CatalogHandler[T, R]) List(w http.ResponseWriter, r *http.Request) {
	storeID, err := parseUUIDParam(r, "storeId")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_list", err)
		return
	}

	entities, err := h.service.List(r.Context(), storeID)
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_list", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, entities)
}

// Get looks an entity up by id alone; it is not store-scoped.
func (h *CatalogHandler[T, R]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_get", err)
		return
	}

	entity, err := h.service.Get(r.Context(), id)
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_get", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, entity)
}

func (h *CatalogHandler[T, R]) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	storeID, err := parseUUIDParam(r, "storeId")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_create", err)
		return
	}

	var req R
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Create(r.Context(), userID, h.build(storeID, req))
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_create", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, entity)
}

// Update is a full-field replace; every required field must be resupplied.
func (h *CatalogHandler[T, R]) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	storeID, err := parseUUIDParam(r, "storeId")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_update", err)
		return
	}

	id, err := parseUUIDParam(r, "id")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_update", err)
		return
	}

	var req R
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.service.Update(r.Context(), userID, id, h.build(storeID, req))
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_update", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, entity)
}

// Delete removes an entity and echoes the deleted record back.
func (h *CatalogHandler[T, R]) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	storeID, err := parseUUIDParam(r, "storeId")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_delete", err)
		return
	}

	id, err := parseUUIDParam(r, "id")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_delete", err)
		return
	}

	entity, err := h.service.Delete(r.Context(), userID, storeID, id)
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, h.name+"_delete", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, entity)
}

// Request payloads and builders for the four generic entity kinds.

// BillboardRequest is the create/update payload for billboards
type BillboardRequest struct {
	Label    string `json:"label"`
	ImageURL string `json:"image_url"`
}

// NewBillboardHandler creates the billboard handler
func NewBillboardHandler(svc *service.BillboardService, logger *zap.Logger) *CatalogHandler[*domain.Billboard, BillboardRequest] {
	build := func(storeID uuid.UUID, req BillboardRequest) *domain.Billboard {
		return &domain.Billboard{
			StoreID:  storeID,
			Label:    req.Label,
			ImageURL: req.ImageURL,
		}
	}
	return NewCatalogHandler("billboards", svc, build, logger)
}

// CategoryRequest is the create/update payload for categories
type CategoryRequest struct {
	Name        string    `json:"name"`
	BillboardID uuid.UUID `json:"billboard_id"`
}

// NewCategoryHandler creates the category handler
func NewCategoryHandler(svc *service.CategoryService, logger *zap.Logger) *CatalogHandler[*domain.Category, CategoryRequest] {
	build := func(storeID uuid.UUID, req CategoryRequest) *domain.Category {
		return &domain.Category{
			StoreID:     storeID,
			BillboardID: req.BillboardID,
			Name:        req.Name,
		}
	}
	return NewCatalogHandler("categories", svc, build, logger)
}

// AttributeRequest is the create/update payload for sizes and colors
type AttributeRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewSizeHandler creates the size handler
func NewSizeHandler(svc *service.SizeService, logger *zap.Logger) *CatalogHandler[*domain.Size, AttributeRequest] {
	build := func(storeID uuid.UUID, req AttributeRequest) *domain.Size {
		return &domain.Size{
			StoreID: storeID,
			Name:    req.Name,
			Value:   req.Value,
		}
	}
	return NewCatalogHandler("sizes", svc, build, logger)
}

// NewColorHandler creates the color handler
func NewColorHandler(svc *service.ColorService, logger *zap.Logger) *CatalogHandler[*domain.Color, AttributeRequest] {
	build := func(storeID uuid.UUID, req AttributeRequest) *domain.Color {
		return &domain.Color{
			StoreID: storeID,
			Name:    req.Name,
			Value:   req.Value,
		}
	}
	return NewCatalogHandler("colors", svc, build, logger)
}
