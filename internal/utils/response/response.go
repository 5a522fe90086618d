// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here, together with
// the mapping from core errors to HTTP status codes.
package response

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/types"
)

// json behaves exactly like encoding/json (struct tags, MarshalJSON,
// time.Time as RFC 3339) but encodes faster.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases.
//
// Success responses may return any JSON shape (a student, a list, a team…).
// Error responses always look like:
//
//	{ "status": "error", "error": "invalid firstName: cannot be empty or whitespace", "field": "firstName" }
//
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// NoContent writes a bodiless 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// GeneralError wraps any Go error into our standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError reports the entity field that broke an invariant.
func ValidationError(err *types.ValidationError) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
		Field:  err.Field,
	}
}

// WriteError picks the status code for an error coming out of the core:
//
//	*types.ValidationError        → 400 Bad Request
//	storage.ErrNotFound           → 404 Not Found
//	context canceled / deadline   → 503 Service Unavailable
//	anything else                 → 500 Internal Server Error
//	  (including storage.ErrCorruptRecord)
func WriteError(w http.ResponseWriter, err error) error {
	var vErr *types.ValidationError
	switch {
	case errors.As(err, &vErr):
		return WriteJSON(w, http.StatusBadRequest, ValidationError(vErr))
	case errors.Is(err, storage.ErrNotFound):
		return WriteJSON(w, http.StatusNotFound, GeneralError(err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return WriteJSON(w, http.StatusServiceUnavailable, GeneralError(err))
	default:
		return WriteJSON(w, http.StatusInternalServerError, GeneralError(err))
	}
}

// NotFound writes a 404 for an absent record.
func NotFound(w http.ResponseWriter, what string) error {
	return WriteJSON(w, http.StatusNotFound, Response{Status: StatusError, Error: what + " not found"})
}
