package lib

import (
	"encoding/json"
	"net/http"
)

// The API contract fixes exact response shapes (bare arrays, plain
// {"message": ...} objects, field-level 422 bodies), so responses are
// written directly instead of through an envelope.

// WriteJSON writes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes {"message": msg}.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"message": msg})
}

// WriteError writes {"error": msg}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// WriteValidationError writes a 422 naming every failing field.
func WriteValidationError(w http.ResponseWriter, ve *ValidationError) {
	WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  ve.Error(),
		"errors": ve.Errors,
	})
}
