package transport

import (
	"encoding/json"
	"net/http"

	"storefront-admin/internal/middleware"
	"storefront-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StoreRequest is the create/update payload for stores
type StoreRequest struct {
	Name string `json:"name"`
}

// StoreHandler handles HTTP requests for store operations. Store is the
// tenant root, so it authorizes by its own owner id rather than through a
// parent lookup.
type StoreHandler struct {
	storeService service.StoreService
	logger       *zap.Logger
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeService service.StoreService, logger *zap.Logger) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
		logger:       logger,
	}
}

// RegisterRoutes registers all store routes
func (h *StoreHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/stores", func(r chi.Router) {
		// Public read
		r.Get("/{storeId}", h.Get)

		// Owner-only operations
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Get("/", h.ListMine)
			r.Patch("/{storeId}", h.Update)
			r.Delete("/{storeId}", h.Delete)
		})
	})
}

// Create opens a new store owned by the caller
func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req StoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store, err := h.storeService.Create(r.Context(), userID, req.Name)
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "stores_create", err)
		return
	}

	h.logger.Info("Store created", zap.String("store_id", store.ID.String()))
	middleware.RespondWithJSON(w, http.StatusCreated, store)
}

// ListMine returns the stores owned by the caller
func (h *StoreHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	stores, err := h.storeService.ListByUser(r.Context(), userID)
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "stores_list", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, stores)
}

// Get fetches a single store by id
func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "storeId")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "stores_get", err)
		return
	}

	store, err := h.storeService.Get(r.Context(), id)
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "stores_get", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, store)
}

// Update renames a store
func (h *StoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	id, err := parseUUIDParam(r, "storeId")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "stores_update", err)
		return
	}

	var req StoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store, err := h.storeService.Update(r.Context(), userID, id, req.Name)
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "stores_update", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, store)
}

// Delete removes an empty store
func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	id, err := parseUUIDParam(r, "storeId")
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "stores_delete", err)
		return
	}

	store, err := h.storeService.Delete(r.Context(), userID, id)
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, "stores_delete", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, store)
}
