package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body: status is "success" or "error",
// data carries the payload on success, errors carries a field -> reason map
// for validation failures.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes a success envelope with an optional data payload.
func WriteSuccess(w http.ResponseWriter, code int, message string, data any) {
	WriteJSON(w, code, Envelope{Status: "success", Message: message, Data: data})
}

// WriteError writes an error envelope without field details.
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Envelope{Status: "error", Message: message})
}

// WriteValidationError writes a 422 error envelope carrying a field -> reason
// mapping.
func WriteValidationError(w http.ResponseWriter, message string, errs any) {
	WriteJSON(w, http.StatusUnprocessableEntity, Envelope{
		Status:  "error",
		Message: message,
		Errors:  errs,
	})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for responses carrying tokens or credentials.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
