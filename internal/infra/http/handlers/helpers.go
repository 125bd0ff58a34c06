package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/xavierca1/cirkidz-admin/internal/infra/http/middleware"
	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("⚠️ [HTTP] encode response: %v", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// decodeJSON reads an optional JSON body into v. An empty body leaves v
// untouched so the use case can report missing fields itself.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return false
	}
	return true
}

// respond maps a use case result onto the response. A nil result with no
// error means the target record does not exist: nothing changed.
func respond[T any](w http.ResponseWriter, operation string, status int, out *T, err error) {
	if reply(w, operation, status, out, err) {
		middleware.RecordTransition(operation)
	}
}

// respondUncommitted is respond for operations that report success without
// writing to the store.
func respondUncommitted[T any](w http.ResponseWriter, operation string, status int, out *T, err error) {
	reply(w, operation, status, out, err)
}

// reply writes the response and reports whether a result was returned.
func reply[T any](w http.ResponseWriter, operation string, status int, out *T, err error) bool {
	switch {
	case err != nil:
		handleError(w, operation, err)
		return false
	case out == nil:
		w.WriteHeader(http.StatusNoContent)
		return false
	default:
		writeJSON(w, status, out)
		return true
	}
}

func handleError(w http.ResponseWriter, operation string, err error) {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		middleware.RecordValidationFailure(operation)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   usecase.CodeValidation,
			Field:   ve.Field,
			Message: ve.Message,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeErrorResponse(w, http.StatusServiceUnavailable, "REQUEST_CANCELLED", err.Error())
	default:
		log.Printf("❌ [HTTP] %s: %v", operation, err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}

// filterBy keeps items whose key matches want; an empty want keeps all.
func filterBy[T any](items []T, want string, key func(T) string) []T {
	if want == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) == want {
			out = append(out, item)
		}
	}
	return out
}
