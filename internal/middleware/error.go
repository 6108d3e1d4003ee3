package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"storefront-admin/internal/domain"

	"go.uber.org/zap"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// RespondWithError sends a structured error response
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithErrorDetails(w, statusCode, message, nil)
}

// respondWithErrorDetails sends a structured error response with additional details
func respondWithErrorDetails(w http.ResponseWriter, statusCode int, message string, details map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error: ErrorDetail{
			Code:      http.StatusText(statusCode),
			Message:   message,
			Details:   details,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	json.NewEncoder(w).Encode(response)
}

// RespondWithDomainError maps the domain error taxonomy onto the status-code
// contract: 400 invalid input, 401 unauthenticated, 403 not the owner,
// 404 missing, 409 referential conflict, 500 everything else. Internal
// failures are logged with an operation tag and surfaced opaquely.
func RespondWithDomainError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		details := map[string]interface{}{"validation_errors": validationErr.Fields}
		respondWithErrorDetails(w, http.StatusBadRequest, "validation failed", details)
	case errors.Is(err, domain.ErrInvalidInput):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		RespondWithError(w, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, domain.ErrUnauthorized):
		RespondWithError(w, http.StatusForbidden, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		RespondWithError(w, http.StatusConflict, "delete blocked: entity is still referenced")
	default:
		logger.Error("Unexpected failure", zap.String("op", op), zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// ErrorHandlingMiddleware catches panics and converts them to 500 errors
func ErrorHandlingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					RespondWithError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
